package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/tyse-emoji/core/emoji"
	"github.com/npillmayer/tyse-emoji/core/font/pixelfont"
	"github.com/npillmayer/tyse-emoji/core/locate/assets"
	"github.com/npillmayer/tyse-emoji/core/locate/resources"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	conf   schuko.Configuration
	repl   *readline.Instance
	fonts  *pixelfont.Collection
	atlas  *assets.Atlas
	engine *emoji.Engine
}

// NewIntp creates an interpreter with an uninitialized engine and an empty
// font collection.
func NewIntp(conf schuko.Configuration) *Intp {
	intp := &Intp{conf: conf, fonts: pixelfont.NewCollection()}
	intp.engine = emoji.NewEngine(intp, intp.fonts, emoji.WithAssetPrefix(configuredPrefix(conf)))
	return intp
}

// EachTexture makes the interpreter the asset provider of its engine,
// serving the textures of the atlas loaded last.
func (intp *Intp) EachTexture(fn func(string, emoji.Texture) bool) {
	if intp.atlas != nil {
		intp.atlas.EachTexture(fn)
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd := parseCommand(line)
		quit, err := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	intp.engine.Close()
	pterm.Info.Println("Good bye!")
}

// Op codes of commands
const (
	QUIT int = iota
	HELP
	LOAD
	REGISTER
	INIT
	GET
	MONO
	APPLY
	LIST
	COMPLETE
	HEADER
	FACES
	RESET
)

var opcodes = map[string]int{
	"quit":     QUIT,
	"help":     HELP,
	"load":     LOAD,
	"register": REGISTER,
	"init":     INIT,
	"get":      GET,
	"mono":     MONO,
	"apply":    APPLY,
	"list":     LIST,
	"complete": COMPLETE,
	"header":   HEADER,
	"faces":    FACES,
	"reset":    RESET,
}

// Command is a parsed input line.
type Command struct {
	code int
	args []string
	rest string // input following the command word, unsplit
}

func parseCommand(line string) Command {
	word, rest := line, ""
	if i := strings.IndexFunc(line, unicode.IsSpace); i > 0 {
		word, rest = line[:i], strings.TrimSpace(line[i:])
	}
	code, ok := opcodes[strings.ToLower(word)]
	if !ok {
		code = HELP
		rest = ""
	}
	tracer().Debugf("parse command = %s %q", word, rest)
	return Command{code: code, args: strings.Fields(rest), rest: rest}
}

func (cmd Command) arg(inx int) string {
	if len(cmd.args) > inx {
		return cmd.args[inx]
	}
	return ""
}

func (intp *Intp) execute(cmd Command) (bool, error) {
	switch cmd.code {
	case QUIT:
		return true, nil
	case HELP:
		help()
	case LOAD:
		if cmd.arg(0) == "" {
			return false, errors.New("usage: load <directory>")
		}
		return false, intp.loadAssets(cmd.arg(0))
	case REGISTER:
		return false, intp.register(cmd)
	case INIT:
		err := intp.engine.Initialize()
		pterm.Printfln("engine is %s with %d emojis", intp.engine.State(), intp.engine.Registry().Len())
		return false, err
	case GET:
		id, err := intp.engine.Registry().Get(cmd.arg(0))
		if err != nil {
			return false, err
		}
		pterm.Printfln("%s = ID %d, code-point %U", cmd.arg(0), id, emoji.Codepoint(id))
	case MONO:
		r, ok := intp.engine.Registry().Rune(cmd.arg(0))
		if !ok {
			return false, fmt.Errorf("emoji not registered: %s", cmd.arg(0))
		}
		mono, err := intp.engine.Registry().IsMonochrome(r)
		if err != nil {
			return false, err
		}
		pterm.Printfln("%s is monochrome: %v", cmd.arg(0), mono)
	case APPLY:
		out := intp.engine.Apply(cmd.rest)
		pterm.Printfln("%s", out)
		pterm.Printfln("%+q", out)
		if unknown := intp.engine.Registry().Tokens(cmd.rest); len(unknown) > 0 {
			pterm.Info.Printfln("unknown emojis: %s", strings.Join(unknown, ", "))
		}
	case LIST:
		return false, intp.list()
	case COMPLETE:
		pterm.Printfln("%v", intp.engine.Registry().Complete(cmd.arg(0)))
	case HEADER:
		return false, intp.header(cmd.arg(0))
	case FACES:
		intp.fonts.LogFaceList()
		for _, f := range intp.fonts.Faces() {
			for _, s := range f.Sizes() {
				pterm.Printfln("%s @ %gpt: %d glyphs", f.Name, s.PtSize, len(s.Characters))
			}
		}
	case RESET:
		intp.engine.Reset()
		pterm.Printfln("engine is %s", intp.engine.State())
	}
	return false, nil
}

func (intp *Intp) register(cmd Command) error {
	name := cmd.arg(0)
	if name == "" {
		return errors.New("usage: register <name>[.m] [width [height]]")
	}
	var tex *assets.Texture
	base := strings.TrimSuffix(name, emoji.MonochromeSuffix)
	if intp.atlas != nil {
		tex = intp.lookupTexture(name, base)
	}
	if tex == nil {
		w, h := 16, 16
		if cmd.arg(1) != "" {
			var err error
			if w, err = strconv.Atoi(cmd.arg(1)); err != nil {
				return fmt.Errorf("width not numeric: %v", cmd.arg(1))
			}
			h = w
		}
		if cmd.arg(2) != "" {
			var err error
			if h, err = strconv.Atoi(cmd.arg(2)); err != nil {
				return fmt.Errorf("height not numeric: %v", cmd.arg(2))
			}
		}
		tex = assets.NewTexture(base, w, h)
	}
	id, err := intp.engine.Register(name, tex)
	if err != nil {
		return err
	}
	if id == emoji.NoID {
		pterm.Printfln("engine is %s, %s queued (%d pending)", intp.engine.State(), name,
			len(intp.engine.Pending()))
		return nil
	}
	pterm.Printfln("%s = ID %d, code-point %U", base, id, emoji.Codepoint(id))
	return nil
}

// lookupTexture finds the atlas texture for a registration name, preferring
// an asset carrying the name's monochrome suffix.
func (intp *Intp) lookupTexture(name, base string) *assets.Texture {
	prefix := configuredPrefix(intp.conf)
	if tex, ok := intp.atlas.Get(prefix + name); ok {
		return tex
	}
	if tex, ok := intp.atlas.Get(prefix + base); ok {
		return tex
	}
	return nil
}

func (intp *Intp) list() error {
	r := intp.engine.Registry()
	data := pterm.TableData{{"ID", "Code-point", "Name", "Mono", "Size"}}
	for id := 0; id < r.Len(); id++ {
		e, err := r.Entry(id)
		if err != nil {
			return err
		}
		data = append(data, []string{
			strconv.Itoa(e.ID),
			fmt.Sprintf("%U", e.Codepoint()),
			e.Name,
			strconv.FormatBool(e.Monochrome),
			fmt.Sprintf("%dx%d", e.Metrics.Width, e.Metrics.Height),
		})
	}
	for _, p := range intp.engine.Pending() {
		data = append(data, []string{"-", "pending", p.Name, "", ""})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (intp *Intp) header(fname string) error {
	if fname == "" {
		return intp.engine.Registry().EmitCHeader(os.Stdout, "")
	}
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err = intp.engine.Registry().EmitCHeader(f, ""); err != nil {
		f.Close()
		return err
	}
	pterm.Info.Printfln("header written to %s", fname)
	return f.Close()
}

func (intp *Intp) loadAssets(dir string) error {
	if intp.engine.State() != emoji.Uninitialized {
		pterm.Info.Println("engine is already initialized, use 'reset' and 'init' to pick up new assets")
	}
	atlas, err := assets.ResolveAtlas(os.DirFS(dir), ".").Atlas()
	if err != nil {
		return err
	}
	intp.atlas = atlas
	pterm.Printfln("loaded %d textures from %s", atlas.Len(), dir)
	return nil
}

func (intp *Intp) loadFont(fontname string, sizes []float64) error {
	var face *pixelfont.Face
	if fontname != "" {
		var err error
		if face, err = resources.ResolveFace(intp.conf, fontname, sizes...).Face(); err != nil {
			pterm.Error.Printfln("cannot load font %s, using fallback font: %v", fontname, err)
		}
	}
	if face == nil {
		face = pixelfont.FallbackFace(sizes...)
	}
	if _, ok := intp.fonts.AddFace(face); !ok {
		return fmt.Errorf("face %s already loaded", face.Name)
	}
	pterm.Printfln("font %s with %d sizes", face.Name, len(face.Sizes()))
	return nil
}

// completer completes command words and emoji names for readline.
type completer struct {
	intp *Intp
}

func (c completer) Do(line []rune, pos int) ([][]rune, int) {
	start := pos
	for start > 0 && !unicode.IsSpace(line[start-1]) {
		start--
	}
	word := string(line[start:pos])
	var candidates []string
	switch {
	case start == 0:
		for cmd := range opcodes {
			if strings.HasPrefix(cmd, word) {
				candidates = append(candidates, cmd+" ")
			}
		}
		sort.Strings(candidates)
	case strings.HasPrefix(word, ":"):
		for _, name := range c.intp.engine.Registry().Complete(word[1:]) {
			candidates = append(candidates, emoji.Token(name))
		}
	default:
		candidates = c.intp.engine.Registry().Complete(word)
	}
	suffixes := make([][]rune, 0, len(candidates))
	for _, cand := range candidates {
		if !strings.HasPrefix(cand, word) {
			continue
		}
		suffixes = append(suffixes, []rune(cand[len(word):]))
	}
	return suffixes, len([]rune(word))
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	load <dir>                  load emoji textures from a directory
	register <name>[.m] [w [h]] register an emoji, queued until 'init'
	init                        initialize the engine
	get <name>                  show ID and code-point of an emoji
	mono <name>                 show the monochrome flag of an emoji
	apply <text>                replace :name: tokens in text
	list                        list registered and pending emojis
	complete <prefix>           list emoji names starting with prefix
	header [file]               write a C header with emoji code-points
	faces                       list font sizes and their glyph counts
	reset                       return the engine to uninitialized state
	quit                        leave
	`)
}
