package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"quill/internal/highlighter"
	"quill/internal/lang"
	"quill/internal/readfile"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

type config struct {
	Path    string
	Theme   string
	Lang    string
	Preview bool
}

type model struct {
	cfg config

	width  int
	height int

	editor textarea.Model
	hl     *highlighter.Highlighter
	langID highlighter.LangID

	lines     []string
	lineSpans [][]highlighter.Span

	previewOn  bool
	savedValue string
	dirty      bool

	status string
	errMsg string
}

func newModel(cfg config, text string, langID highlighter.LangID) model {
	editor := textarea.New()
	editor.Prompt = ""
	editor.CharLimit = 0
	editor.ShowLineNumbers = true
	editor.SetValue(text)
	editor.Focus()

	m := model{
		cfg:        cfg,
		editor:     editor,
		hl:         highlighter.New(),
		langID:     langID,
		previewOn:  cfg.Preview,
		savedValue: text,
	}
	m.rehighlight()
	return m
}

func (m model) Init() tea.Cmd {
	return textarea.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeEditor()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+q":
			return m, tea.Quit
		case "ctrl+s":
			m.save()
			return m, nil
		case "ctrl+p":
			m.previewOn = !m.previewOn
			m.resizeEditor()
			return m, nil
		}
	}

	prev := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if m.editor.Value() != prev {
		m.rehighlight()
	}
	return m, cmd
}

// rehighlight reclassifies the whole buffer. There is no cache and no
// incremental state: every edit reruns all passes over the full text,
// which stays comfortably under a frame for editor-sized buffers.
func (m *model) rehighlight() {
	text := m.editor.Value()
	m.lines = strings.Split(text, "\n")
	spans := m.hl.Classify(text, m.langID)
	m.lineSpans = highlighter.SplitByLines(text, spans)
	m.dirty = text != m.savedValue
	m.errMsg = ""
}

func (m *model) save() {
	if m.cfg.Path == "" {
		m.errMsg = "no file path; start quill with a file argument"
		return
	}
	text := m.editor.Value()
	if err := readfile.WriteText(m.cfg.Path, text); err != nil {
		m.errMsg = "save failed: " + err.Error()
		return
	}
	m.savedValue = text
	m.dirty = false
	m.status = "saved " + m.cfg.Path
}

func (m *model) resizeEditor() {
	editorW, contentH, _ := m.layout()
	m.editor.SetWidth(editorW)
	m.editor.SetHeight(contentH)
}

func loadBuffer(path string) (string, highlighter.LangID, error) {
	if path == "" {
		return "", highlighter.LangPlain, nil
	}

	text, err := readfile.ReadTextNormalized(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", highlighter.DetectLanguage(path), nil
		}
		return "", highlighter.LangPlain, err
	}

	firstLine, _, _ := strings.Cut(text, "\n")
	return text, highlighter.DetectLanguageWithShebang(path, firstLine), nil
}

func run() error {
	cfg := config{}
	flag.StringVar(&cfg.Theme, "theme", "nord", "color theme (any chroma style name)")
	flag.StringVar(&cfg.Lang, "lang", "", "language override (swift, python, js, json, markdown)")
	flag.BoolVar(&cfg.Preview, "preview", true, "show the highlighted preview pane")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: quill [flags] [file]\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 1 {
		return fmt.Errorf("expected at most one file argument, got %d", flag.NArg())
	}
	cfg.Path = flag.Arg(0)

	if err := SetTheme(cfg.Theme); err != nil {
		return err
	}

	text, langID, err := loadBuffer(cfg.Path)
	if err != nil {
		return err
	}
	if cfg.Lang != "" {
		id, ok := lang.Parse(cfg.Lang)
		if !ok {
			return fmt.Errorf("unknown language %q", cfg.Lang)
		}
		langID = id
	}

	m := newModel(cfg, text, langID)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "quill:", err)
		os.Exit(1)
	}
}
