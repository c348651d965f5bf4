package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"babynames/internal/chart"
	"babynames/internal/engine"
	"babynames/internal/storage"
	"github.com/chzyer/readline"
	"github.com/pkg/errors"
)

const menuText = `
Alberta Baby names
-------------------------------
(0) Quit
(1) Load and process spreadsheet file
(2) Save processed data
(3) Open processed data
(4) Search for a name
(5) Print top ten list for a year
(6) Search for names with specific letters
(7) Graphically display the trend of a name
`

const noData = "There are no data"

// LineReader is the part of *readline.Instance the menu needs.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Close() error
}

// Menu is the interactive loop. It owns the current session and replaces
// it only after a load succeeds.
type Menu struct {
	cfg     *Config
	in      LineReader
	out     io.Writer
	session *engine.Session
}

func NewMenu(cfg *Config, in LineReader, out io.Writer) *Menu {
	return &Menu{cfg: cfg, in: in, out: out}
}

func runMenu(ctx context.Context, cfg *Config, stdin io.ReadCloser, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:  cfg.History,
		HistoryLimit: 1000,

		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	})
	if err != nil {
		return errors.Wrap(err, "getting readline")
	}
	defer rl.Close()

	return NewMenu(cfg, rl, stdout).Run(ctx)
}

// Session returns the currently loaded session, nil before any load.
func (m *Menu) Session() *engine.Session {
	return m.session
}

// Run shows the menu until the user quits, input ends or ctx is done.
func (m *Menu) Run(ctx context.Context) error {
	for ctx.Err() == nil {
		m.printf("%s", menuText)

		choice, err := m.choice()
		if err == nil && choice == 0 {
			break
		}
		if err == nil {
			err = m.dispatch(choice)
		}
		if err != nil {
			if isEndOfInput(err) {
				break
			}
			return err
		}
	}

	m.printf("Goodbye\n")
	return nil
}

func (m *Menu) dispatch(choice int) error {
	switch choice {
	case 1:
		return m.loadSheet()
	case 2:
		return m.save()
	case 3:
		return m.open()
	case 4:
		return m.searchName()
	case 5:
		return m.topTen()
	case 6:
		return m.wildcard()
	case 7:
		return m.trend()
	}
	return nil
}

// choice prompts until the answer is a number from 0 to 7.
func (m *Menu) choice() (int, error) {
	prompt := "\nEnter command: "
	for {
		line, err := m.prompt(prompt)
		if err != nil {
			return 0, err
		}
		if n, err := strconv.Atoi(line); err == nil && n >= 0 && n <= 7 {
			return n, nil
		}
		prompt = "Enter command: "
	}
}

func (m *Menu) loadSheet() error {
	path, err := m.promptDefault("Enter a file name", m.cfg.Data)
	if err != nil {
		return err
	}

	s, err := engine.Load(path, m.cfg.loadOptions())
	if err != nil {
		if errors.Is(err, engine.ErrLoadFailure) {
			m.printf("File does not exist or could not be read: %v\n", err)
		} else {
			m.printf("Data could not be processed: %v\n", err)
		}
		return nil
	}

	m.session = s
	m.printf("Data has been loaded and processed\n")
	return nil
}

func (m *Menu) save() error {
	if m.session.Empty() {
		m.printf("%s\n", noData)
		return nil
	}
	path, err := m.promptDefault("Enter a file name", m.cfg.DB)
	if err != nil {
		return err
	}
	if err := storage.Save(path, m.session); err != nil {
		m.printf("Could not save processed data: %v\n", err)
		return nil
	}
	m.printf("Saved processed data in %s.\n", path)
	return nil
}

func (m *Menu) open() error {
	path, err := m.promptDefault("Enter a file name", m.cfg.DB)
	if err != nil {
		return err
	}
	s, err := storage.Load(path)
	if err != nil {
		m.printf("Could not load processed data from %s.\n", path)
		return nil
	}
	m.session = s
	m.printf("Loaded processed data from %s.\n", path)
	return nil
}

func (m *Menu) searchName() error {
	if m.session.Empty() {
		m.printf("%s\n", noData)
		return nil
	}
	query, err := m.prompt("Enter a name: ")
	if err != nil {
		return err
	}

	res, err := engine.ExactSearch(m.session.Names, m.session.MaxYear, query)
	if errors.Is(err, engine.ErrNameNotFound) {
		m.printf("%s\n", m.notFound(res.Name))
		return nil
	}
	if err != nil {
		return err
	}
	writeTrend(m.out, res.Name, res.Rows)
	return nil
}

func (m *Menu) topTen() error {
	if m.session.Empty() {
		m.printf("%s\n", noData)
		return nil
	}

	prompt := fmt.Sprintf("Enter year (%d to %d): ", engine.FirstYear, m.session.MaxYear)
	var year int
	for {
		line, err := m.prompt(prompt)
		if err != nil {
			return err
		}
		n, err := strconv.Atoi(line)
		if err == nil && n >= engine.FirstYear && n <= m.session.MaxYear {
			year = n
			break
		}
	}

	list, err := engine.TopTen(m.session.TopTen, m.session.MaxYear, year)
	if errors.Is(err, engine.ErrYearOutOfRange) {
		m.printf("There is no top ten list for %d\n", year)
		return nil
	}
	if err != nil {
		return err
	}
	writeTopTen(m.out, list)
	return nil
}

func (m *Menu) wildcard() error {
	if m.session.Empty() {
		m.printf("%s\n", noData)
		return nil
	}
	pattern, err := m.prompt("Enter name with * indicating missing letters: ")
	if err != nil {
		return err
	}

	matches, err := engine.WildcardSearch(m.session.Names, pattern)
	if errors.Is(err, engine.ErrInvalidPattern) {
		m.printf("Use a single * for the missing letters, e.g. franc*, *elly or moh*had\n")
		return nil
	}
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		m.printf("No name found using %s\n", pattern)
		return nil
	}
	for _, match := range matches {
		writeTrend(m.out, match.Name, match.Rows)
	}
	return nil
}

func (m *Menu) trend() error {
	if m.session.Empty() {
		m.printf("%s\n", noData)
		return nil
	}
	query, err := m.prompt("Enter a name: ")
	if err != nil {
		return err
	}

	series, err := engine.RangeProjection(m.session.Names, query, engine.FirstYear, m.session.MaxYear)
	if errors.Is(err, engine.ErrNameNotFound) {
		m.printf("%s\n", m.notFound(series.Name))
		return nil
	}
	if err != nil {
		return err
	}
	m.printf("\n%s\n", chart.Render(series, m.cfg.ChartHeight))
	return nil
}

func (m *Menu) notFound(name string) string {
	return engine.NotFoundMessage(name, m.session.MaxYear)
}

func (m *Menu) prompt(p string) (string, error) {
	m.in.SetPrompt(p)
	line, err := m.in.Readline()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptDefault shows def in brackets and returns it for an empty answer.
func (m *Menu) promptDefault(label, def string) (string, error) {
	line, err := m.prompt(fmt.Sprintf("%s [%s]: ", label, def))
	if err != nil {
		return "", err
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

func (m *Menu) printf(format string, a ...interface{}) {
	fmt.Fprintf(m.out, format, a...)
}

func isEndOfInput(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt)
}
