package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel is the root model. It owns the navigation stack; the screen on
// top of the stack receives input and is rendered.
type AppModel struct {
	Stack         ViewStack
	Prompt        *RoutePromptModal
	Backend       Backend
	Status        string
	StatusIsError bool

	help   help.Model
	width  int
	height int
	nextID int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model with a screen for root on the stack.
func NewAppModel(backend Backend, root Route) (*AppModel, error) {
	a := &AppModel{
		Backend: backend,
		help:    newHelpModel(),
	}
	s, err := a.newScreen(root)
	if err != nil {
		return nil, err
	}
	a.Stack.Push(s)
	return a, nil
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Current returns the screen on top of the stack.
func (a *AppModel) Current() Screen {
	return a.Stack.Peek()
}

// newScreen builds the screen for route, sized to the terminal.
func (a *AppModel) newScreen(route Route) (Screen, error) {
	if err := route.Validate(); err != nil {
		return nil, err
	}
	a.nextID++
	var s Screen
	switch r := route.(type) {
	case NotPickedRoute:
		s = NewNotPickedView(a.nextID, r.DriverName, a.Backend)
	default:
		s = NewProductDetailsView(a.nextID, route, a.Backend)
	}
	if a.width > 0 && a.height > 0 {
		s.Update(a.screenSize())
	}
	return s, nil
}

// screenSize is the area left for screens after the status and help lines.
func (a *AppModel) screenSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: a.width, Height: max(a.height-2, 1)}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	if s := a.Current(); s != nil {
		return s.Init()
	}
	return nil
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if a.Prompt != nil {
			_, cmd := a.Prompt.Update(msg)
			return a, cmd
		}
		switch {
		case key.Matches(msg, Keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, Keys.ChangeRoute):
			return a, func() tea.Msg { return ShowRoutePromptMsg{} }
		}
	case NavigateMsg:
		return a.handleNavigate(msg)
	case BackMsg:
		return a.handleBack()
	case SetRouteMsg:
		return a.handleSetRoute(msg)
	case ShowRoutePromptMsg:
		return a.handleShowRoutePrompt()
	case DismissModalMsg:
		a.Prompt = nil
		return a, nil
	case tea.WindowSizeMsg:
		return a.handleWindowSize(msg)
	case spinner.TickMsg:
		// Each spinner ignores ticks carrying another spinner's id.
		return a, a.broadcast(msg)
	case targetedMsg:
		if s := a.Stack.Find(msg.targetScreen()); s != nil {
			_, cmd := s.Update(msg)
			return a, cmd
		}
		return a, nil // screen was popped; result discarded
	}

	if a.Prompt != nil {
		_, cmd := a.Prompt.Update(msg)
		return a, cmd
	}
	if s := a.Current(); s != nil {
		_, cmd := s.Update(msg)
		return a, cmd
	}
	return a, nil
}

// broadcast delivers msg to every screen on the stack.
func (a *AppModel) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, a.Stack.Len())
	for _, s := range a.Stack.Stack {
		_, cmd := s.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	var b strings.Builder
	if s := a.Current(); s != nil {
		b.WriteString(s.View())
	}
	if a.Prompt != nil {
		b.WriteString("\n" + a.Prompt.View())
	}
	b.WriteString("\n")
	if a.Status != "" {
		style := Styles.Status
		if a.StatusIsError {
			style = Styles.Error
		}
		b.WriteString(style.Render(a.Status) + "\n")
	}
	var bindings []key.Binding
	if hp, ok := a.Current().(helpProvider); ok {
		bindings = hp.ShortHelp()
	}
	b.WriteString(RenderHelp(a.help, bindings))
	return b.String()
}
