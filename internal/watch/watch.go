package watch

import (
	"fmt"
	"net/url"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gorilla/websocket"

	"github.com/muurk/wifimon/internal/tracker"
)

// Messages for async operations
type connectedMsg struct {
	conn *websocket.Conn
}
type devicesMsg struct {
	devices map[string]tracker.DeviceInfo
}
type errMsg struct {
	err error
}

// watchKeyMap defines key bindings for the dashboard
type watchKeyMap struct {
	Quit key.Binding
}

var keys = watchKeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Model is the dashboard state: a WebSocket feed of device snapshots
// rendered as a distance-sorted table.
type Model struct {
	addr       string
	conn       *websocket.Conn
	spinner    spinner.Model
	devices    map[string]tracker.DeviceInfo
	lastUpdate time.Time
	err        error
}

// NewModel creates a dashboard model for a server address (host:port).
func NewModel(addr string) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = headerStyle
	return Model{
		addr:    addr,
		spinner: sp,
	}
}

// Run connects the dashboard to a running wifimon server and blocks until
// the user quits or the connection fails.
func Run(addr string) error {
	p := tea.NewProgram(NewModel(addr), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init starts the spinner and the connection attempt.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, connect(m.addr))
}

// connect dials the server's WebSocket feed.
func connect(addr string) tea.Cmd {
	return func() tea.Msg {
		u := url.URL{Scheme: "ws", Host: addr, Path: "/api/ws"}
		conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
		if err != nil {
			return errMsg{err: fmt.Errorf("cannot connect to %s: %w", addr, err)}
		}
		return connectedMsg{conn: conn}
	}
}

// waitForSnapshot blocks on the next pushed device snapshot.
func waitForSnapshot(conn *websocket.Conn) tea.Cmd {
	return func() tea.Msg {
		var devices map[string]tracker.DeviceInfo
		if err := conn.ReadJSON(&devices); err != nil {
			return errMsg{err: fmt.Errorf("feed closed: %w", err)}
		}
		return devicesMsg{devices: devices}
	}
}

// Update handles messages and key presses.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Quit) {
			if m.conn != nil {
				m.conn.Close()
			}
			return m, tea.Quit
		}
		return m, nil

	case connectedMsg:
		m.conn = msg.conn
		return m, waitForSnapshot(m.conn)

	case devicesMsg:
		m.devices = msg.devices
		m.lastUpdate = time.Now()
		return m, waitForSnapshot(m.conn)

	case errMsg:
		m.err = msg.err
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	out := titleStyle.Render("WIFIMON") + "\n"
	out += subtitleStyle.Render("device distances via "+m.addr) + "\n\n"

	switch {
	case m.err != nil:
		out += errorStyle.Render("error: "+m.err.Error()) + "\n"
	case m.conn == nil:
		out += m.spinner.View() + " connecting...\n"
	case len(m.devices) == 0:
		out += m.spinner.View() + " connected, waiting for devices...\n"
	default:
		out += renderTable(m.devices)
		out += subtitleStyle.Render(fmt.Sprintf("\n%d devices, updated %s",
			len(m.devices), m.lastUpdate.Format("15:04:05")))
	}

	out += helpStyle.Render("\nq quit")
	return out
}

// renderTable renders the devices as a fixed-width table sorted by
// distance, nearest first.
func renderTable(devices map[string]tracker.DeviceInfo) string {
	labels := make([]string, 0, len(devices))
	for label := range devices {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		di, dj := devices[labels[i]].Distance, devices[labels[j]].Distance
		if di != dj {
			return di < dj
		}
		return labels[i] < labels[j]
	})

	out := headerStyle.Render(fmt.Sprintf("%-28s %9s %7s %-15s %-16s",
		"DEVICE", "DISTANCE", "RSSI", "IP", "TYPE")) + "\n"

	for _, label := range labels {
		d := devices[label]
		dist := distanceStyle(d.Distance).Render(fmt.Sprintf("%8.2fm", d.Distance))
		out += rowStyle.Render(fmt.Sprintf("%-28s ", truncate(label, 28))) +
			dist +
			rowStyle.Render(fmt.Sprintf(" %6.0f %-15s %-16s",
				d.RSSI, d.IP, truncate(d.DeviceType, 16))) + "\n"
	}
	return out
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
