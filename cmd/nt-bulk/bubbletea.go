package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

/*
 * Interactive prompts use Bubble Tea.
 * All BubbleTea-related code is present in this file to make easy to switch to another library someday.
 */

var (
	listWidth             = 20
	listHeight            = 14
	listTitleStyle        = lipgloss.NewStyle().MarginLeft(2)
	listItemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	listSelectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	helpStyle             = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
	quitTextStyle         = lipgloss.NewStyle().Margin(1, 0, 2, 4)
)

/*
 * Name Selection (deck, note type)
 */

// chooseFrom asks the user to pick one of the names returned by the loader.
// An empty string is returned when the user cancels or no names are available.
func chooseFrom(ctx context.Context, title string, loader func(ctx context.Context) ([]string, error)) string {
	names, err := loader(ctx)
	if err != nil {
		log.Fatal(err)
	}
	if len(names) == 0 {
		return ""
	}
	return ChooseName(title, names)
}

func ChooseName(title string, names []string) string {
	/* Inspired by https://github.com/charmbracelet/bubbletea/blob/master/examples/list-simple/ */
	res, err := tea.NewProgram(NewNameModel(title, names)).Run()
	if err != nil {
		log.Fatal(err)
	}
	return res.(NameModel).choice
}

func NewNameModel(title string, names []string) NameModel {
	items := []list.Item{}
	for _, name := range names {
		items = append(items, NameItem(name))
	}

	l := list.New(items, nameDelegate{}, listWidth, listHeight)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowPagination(len(names) > listHeight)
	l.Styles.Title = listTitleStyle
	l.Styles.HelpStyle = helpStyle

	return NameModel{list: l}
}

type NameItem string

func (i NameItem) FilterValue() string { return string(i) }

type nameDelegate struct{}

func (d nameDelegate) Height() int                             { return 1 }
func (d nameDelegate) Spacing() int                            { return 0 }
func (d nameDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d nameDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(NameItem)
	if !ok {
		return
	}

	fn := listItemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return listSelectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(string(i)))
}

type NameModel struct {
	list     list.Model
	choice   string
	quitting bool
}

func (m NameModel) Init() tea.Cmd {
	return nil
}

func (m NameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		// Let the list handle the keys while filtering
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch keypress := msg.String(); keypress {
		case "ctrl+c", "esc", "q":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			i, ok := m.list.SelectedItem().(NameItem)
			if ok {
				m.choice = string(i)
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m NameModel) View() string {
	if m.choice != "" {
		return quitTextStyle.Render(fmt.Sprintf("%s? Sounds good to me.", m.choice))
	}
	if m.quitting {
		return ""
	}
	return "\n" + m.list.View()
}
