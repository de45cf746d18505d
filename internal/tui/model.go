package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hivemind/internal/agent"
	"hivemind/internal/api"
	"hivemind/internal/config"
	"hivemind/internal/notify"
	"hivemind/internal/poller"
	"hivemind/internal/task"
	"hivemind/internal/workflow"
)

type viewState int

const (
	viewDashboard viewState = iota
	viewTasks
	viewSend
)

// Model is the dashboard TUI model. All agent and workflow state lives here
// and is mutated only on the Update path; poller and WebSocket goroutines
// deliver data as messages, never by writing shared state.
type Model struct {
	state   viewState
	version string

	cfg     *config.Config
	client  *api.Client
	agents  *agent.Set
	wf      *workflow.State
	poller  *poller.Poller
	tasks   *task.Registry
	live    *api.LiveClient
	cancel  context.CancelFunc

	activeAgent agent.Type // agent handling the active task
	health      *api.Health
	taskList    []api.Task
	taskCursor  int

	input textinput.Model
	help  help.Model

	width     int
	height    int
	err       string
	statusMsg string
}

// --- messages ---

// sampleMsg carries one poller delivery.
type sampleMsg struct{ sample poller.Sample }

// samplesClosedMsg is sent when the poller's update channel closes.
type samplesClosedMsg struct{}

// healthMsg is sent after a backend health check.
type healthMsg struct {
	health *api.Health
	err    error
}

// tasksLoadedMsg is sent after refreshing the task registry.
type tasksLoadedMsg struct {
	tasks []api.Task
	err   error
}

// taskStartedMsg is sent after submitting a message.
type taskStartedMsg struct {
	taskID    string
	agentType agent.Type
	message   string
	err       error
}

// liveConnectedMsg is sent after the WebSocket dial attempt.
type liveConnectedMsg struct {
	lc  *api.LiveClient
	err error
}

// liveUpdateMsg carries one WebSocket push frame.
type liveUpdateMsg struct{ upd api.LiveUpdate }

// liveClosedMsg is sent when the WebSocket channel closes.
type liveClosedMsg struct{}

// healthTickMsg triggers a periodic backend health refresh.
type healthTickMsg struct{}

// --- commands ---

func waitSampleCmd(p *poller.Poller) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-p.Updates()
		if !ok {
			return samplesClosedMsg{}
		}
		return sampleMsg{sample: s}
	}
}

func loadHealthCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		h, err := client.Health(ctx)
		return healthMsg{health: h, err: err}
	}
}

func healthTick() tea.Cmd {
	return tea.Tick(30*time.Second, func(time.Time) tea.Msg {
		return healthTickMsg{}
	})
}

func loadTasksCmd(reg *task.Registry) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		tasks, err := reg.Refresh(ctx)
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

func startTaskCmd(client *api.Client, target agent.Type, message string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		id, err := client.StartWorkflow(ctx, string(target), message)
		return taskStartedMsg{taskID: id, agentType: target, message: message, err: err}
	}
}

func connectLiveCmd(baseURL string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		lc, err := api.DialLive(ctx, baseURL, "main")
		return liveConnectedMsg{lc: lc, err: err}
	}
}

func waitLiveCmd(lc *api.LiveClient) tea.Cmd {
	return func() tea.Msg {
		upd, ok := <-lc.Updates()
		if !ok {
			return liveClosedMsg{}
		}
		return liveUpdateMsg{upd: upd}
	}
}

// Run starts the dashboard and blocks until the user quits.
func Run(version string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	client := api.NewClient(cfg.BackendURL)

	ctx, cancel := context.WithCancel(context.Background())
	p := poller.New(client, poller.WithInterval(cfg.PollDuration()))
	go p.Run(ctx)

	input := textinput.New()
	input.Placeholder = "What should the hive work on?"
	input.CharLimit = 500

	m := Model{
		version: version,
		cfg:     cfg,
		client:  client,
		agents:  agent.NewSet(),
		wf:      workflow.NewState(),
		poller:  p,
		tasks:   task.NewRegistry(client),
		cancel:  cancel,
		input:   input,
		help:    help.New(),
	}

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	cancel()
	return err
}

// Init kicks off the background loaders.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadHealthCmd(m.client),
		loadTasksCmd(m.tasks),
		connectLiveCmd(m.client.BaseURL()),
		waitSampleCmd(m.poller),
		healthTick(),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.state == viewSend {
			return m.updateSend(msg)
		}
		switch {
		case msg.String() == "q", msg.String() == "ctrl+c":
			m.cancel()
			if m.live != nil {
				m.live.Close()
			}
			return m, tea.Quit
		case msg.String() == "tab":
			if m.state == viewDashboard {
				m.state = viewTasks
				return m, loadTasksCmd(m.tasks)
			}
			m.state = viewDashboard
			return m, nil
		case msg.String() == "s":
			m.state = viewSend
			m.input.Reset()
			return m, m.input.Focus()
		case msg.String() == "r":
			if m.state == viewTasks {
				return m, loadTasksCmd(m.tasks)
			}
			return m, loadHealthCmd(m.client)
		default:
			if m.state == viewTasks {
				return m.updateTasks(msg)
			}
		}
		return m, nil

	case sampleMsg:
		m.applySample(msg.sample)
		return m, waitSampleCmd(m.poller)

	case samplesClosedMsg:
		return m, nil

	case healthMsg:
		if msg.err != nil {
			m.err = fmt.Sprintf("backend unreachable: %v", msg.err)
			m.health = nil
		} else {
			m.err = ""
			m.health = msg.health
		}
		return m, nil

	case healthTickMsg:
		return m, tea.Batch(loadHealthCmd(m.client), healthTick())

	case tasksLoadedMsg:
		if msg.err != nil {
			m.err = msg.err.Error()
			return m, nil
		}
		m.taskList = msg.tasks
		if m.taskCursor >= len(m.taskList) {
			m.taskCursor = 0
		}
		return m, nil

	case taskStartedMsg:
		if msg.err != nil {
			m.err = fmt.Sprintf("send failed: %v", msg.err)
			m.state = viewDashboard
			return m, nil
		}
		m.err = ""
		m.statusMsg = fmt.Sprintf("task %s started on %s", msg.taskID, msg.agentType)
		m.state = viewDashboard
		m.activeAgent = msg.agentType
		m.agents.Assign(msg.agentType, msg.message)
		m.wf.Reset(msg.taskID)
		m.poller.SetActiveTask(msg.taskID)
		if m.live != nil {
			m.live.Subscribe(msg.taskID)
		}
		return m, nil

	case liveConnectedMsg:
		if msg.err != nil {
			// Push channel is best-effort; polling carries the dashboard.
			return m, nil
		}
		m.live = msg.lc
		return m, waitLiveCmd(m.live)

	case liveUpdateMsg:
		m.applyLive(msg.upd)
		return m, waitLiveCmd(m.live)

	case liveClosedMsg:
		m.live = nil
		return m, nil
	}

	return m, nil
}

// updateSend handles keys while the send form is open.
func (m Model) updateSend(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = viewDashboard
		return m, nil
	case "enter":
		message := m.input.Value()
		if message == "" {
			return m, nil
		}
		target := agent.Select(m.agents)
		m.statusMsg = fmt.Sprintf("sending to %s...", target)
		return m, startTaskCmd(m.client, target, message)
	case "ctrl+c":
		m.cancel()
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// updateTasks handles keys in the task list view.
func (m Model) updateTasks(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.taskCursor < len(m.taskList)-1 {
			m.taskCursor++
		}
	case "k", "up":
		if m.taskCursor > 0 {
			m.taskCursor--
		}
	case "enter":
		if m.taskCursor < len(m.taskList) {
			t := m.taskList[m.taskCursor]
			if !t.Status.Terminal() {
				m.activeAgent = agent.Type(t.AgentType)
				m.wf.Reset(t.ID)
				m.poller.SetActiveTask(t.ID)
				if m.live != nil {
					m.live.Subscribe(t.ID)
				}
				m.statusMsg = "watching " + t.ID
				m.state = viewDashboard
			}
		}
	}
	return m, nil
}

// applySample folds one poller delivery into agent and workflow state.
func (m *Model) applySample(s poller.Sample) {
	if s.Err != nil {
		m.wf.LogError(s.Err.Error())
		return
	}
	m.activeAgent = agent.Type(s.Task.AgentType)
	m.agents.ApplyTask(s.Task)
	m.wf.Apply(s.Task)

	if s.Terminal {
		m.statusMsg = fmt.Sprintf("task %s %s", s.Task.ID, s.Task.Status)
		if m.cfg.Notify {
			go notify.NewDesktopNotifier().Send(notify.TaskFinished(s.Task))
		}
	}
}

// applyLive folds a WebSocket push frame into display state. Frames for a
// task other than the one being watched are ignored.
func (m *Model) applyLive(upd api.LiveUpdate) {
	watching := m.poller.ActiveTask()
	if watching == "" || upd.TaskID != watching {
		return
	}
	snapshot := &api.Task{
		ID:        upd.TaskID,
		AgentType: string(m.activeAgent),
		Status:    upd.Status,
		Progress:  upd.Progress,
		Logs:      upd.Logs,
	}
	if upd.Type == "task_complete" && upd.Progress == 0 && upd.Status == api.TaskCompleted {
		snapshot.Progress = 100
	}
	m.agents.ApplyTask(snapshot)
	m.wf.Apply(snapshot)
}

func (m Model) View() string {
	title := titleStyle.Render(" HIVE MIND ")
	tabs := renderTabs(m.state)

	var content string
	switch m.state {
	case viewTasks:
		content = renderTasksView(m.taskList, m.taskCursor, m.contentWidth())
	case viewSend:
		content = m.renderSendView()
	default:
		content = m.renderDashboard()
	}

	status := m.renderStatusLine()
	helpBar := helpStyle.Render(m.help.View(keys))

	return appStyle.Render(
		lipgloss.JoinVertical(lipgloss.Left, title+"  "+tabs, "", content, status, helpBar),
	)
}

func (m Model) contentWidth() int {
	w := m.width - 4
	if w < 40 {
		w = 40
	}
	return w
}

func renderTabs(state viewState) string {
	dash := inactiveTabStyle.Render("Dashboard")
	tasks := inactiveTabStyle.Render("Tasks")
	switch state {
	case viewTasks:
		tasks = activeTabStyle.Render("Tasks")
	default:
		dash = activeTabStyle.Render("Dashboard")
	}
	return dash + "  " + tasks
}

func (m Model) renderStatusLine() string {
	if m.err != "" {
		return statusErrorStyle.Render(" ✗ " + m.err)
	}
	line := ""
	if m.health != nil {
		line = statusOkStyle.Render(fmt.Sprintf(" ● backend %s (v%s)", m.health.Status, m.health.Version))
	} else {
		line = statusMutedStyle.Render(" ○ checking backend...")
	}
	if m.live != nil {
		line += statusMutedStyle.Render("  live")
	}
	if m.statusMsg != "" {
		line += statusMutedStyle.Render("  " + m.statusMsg)
	}
	return line
}

func (m Model) renderSendView() string {
	target := agent.Select(m.agents)
	return lipgloss.JoinVertical(lipgloss.Left,
		formLabelStyle.Render("New message"),
		"",
		m.input.View(),
		"",
		formHintStyle.Render(fmt.Sprintf("will be routed to %s · enter to send · esc to cancel", target)),
	)
}
