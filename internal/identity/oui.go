package identity

// ouiManufacturers maps IEEE OUI prefixes (first three octets, canonical
// form) to manufacturer names. This is a curated subset covering the
// vendors that actually show up on home and office LANs; anything else
// resolves to an empty manufacturer.
var ouiManufacturers = map[string]string{
	// Apple
	"A8:5C:2C": "Apple", "AC:BC:32": "Apple", "AC:88:FD": "Apple",
	"24:F6:77": "Apple", "F0:D1:A9": "Apple", "F8:27:93": "Apple",
	"04:4B:ED": "Apple", "28:5A:EB": "Apple", "34:08:BC": "Apple",
	"58:B1:0F": "Apple", "60:F4:45": "Apple", "70:DE:E2": "Apple",
	"80:B0:3D": "Apple", "88:66:A5": "Apple", "90:B0:ED": "Apple",
	"9C:F3:87": "Apple", "A4:B8:05": "Apple", "AC:61:EA": "Apple",
	"8C:85:90": "Apple", "A4:83:E7": "Apple", "A8:86:DD": "Apple",
	"F0:18:98": "Apple", "C8:3C:85": "Apple", "34:EE:16": "Apple",

	// Samsung
	"94:76:B7": "Samsung", "A0:82:1F": "Samsung", "B4:7C:9C": "Samsung",
	"CC:07:AB": "Samsung", "F4:42:8F": "Samsung", "08:D4:2B": "Samsung",
	"0C:14:20": "Samsung", "0C:89:10": "Samsung", "10:1D:C0": "Samsung",

	// Google
	"3C:5A:B4": "Google", "54:60:09": "Google", "F4:F5:E8": "Google",
	"08:9E:08": "Google", "20:DF:B9": "Google", "28:BC:18": "Google",
	"48:D6:D5": "Google", "64:16:66": "Google",

	// Amazon
	"00:FC:8B": "Amazon", "34:D2:70": "Amazon", "40:B4:CD": "Amazon",
	"44:65:0D": "Amazon", "50:F5:DA": "Amazon", "68:37:E9": "Amazon",
	"74:C2:46": "Amazon", "0C:47:C9": "Amazon", "18:74:2E": "Amazon",

	// Sonos
	"00:0E:58": "Sonos", "34:7E:5C": "Sonos", "48:A6:B8": "Sonos",
	"54:2A:1B": "Sonos", "5C:AA:FD": "Sonos", "78:28:CA": "Sonos",
	"94:9F:3E": "Sonos",

	// Nest
	"18:B4:30": "Nest", "38:8B:59": "Nest", "64:16:87": "Nest",

	// Ring
	"00:62:6E": "Ring", "2C:AA:8E": "Ring", "30:91:8F": "Ring",
	"5C:41:E6": "Ring", "7C:64:56": "Ring",

	// Espressif (DIY/IoT modules)
	"24:0A:C4": "Espressif", "30:AE:A4": "Espressif", "84:CC:A8": "Espressif",
	"A4:CF:12": "Espressif", "EC:FA:BC": "Espressif",

	// Raspberry Pi
	"B8:27:EB": "Raspberry Pi", "DC:A6:32": "Raspberry Pi", "E4:5F:01": "Raspberry Pi",

	// TP-Link
	"50:C7:BF": "TP-Link", "98:DA:C4": "TP-Link", "C0:4A:00": "TP-Link",
	"EC:08:6B": "TP-Link",

	// Intel (laptop/desktop radios)
	"00:1B:77": "Intel", "34:13:E8": "Intel", "3C:A9:F4": "Intel",
	"8C:8C:AA": "Intel", "A4:C3:F0": "Intel",
}

// LookupManufacturer resolves a canonical MAC address to a manufacturer
// name via its OUI prefix. Returns an empty string when the prefix is not
// in the table.
func LookupManufacturer(mac string) string {
	if len(mac) < 8 {
		return ""
	}
	return ouiManufacturers[mac[:8]]
}
