package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/tyse-emoji/core/emoji"
	"github.com/npillmayer/tyse-emoji/core/locate/resources"
	"github.com/pterm/pterm"
)

// tracer traces with key 'tyse.emoji'
func tracer() tracing.Trace {
	return tracing.Select("tyse.emoji")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	assetdir := flag.String("assets", "", "Directory of emoji textures")
	fontname := flag.String("font", "", "Font to supply with emoji glyphs")
	fontpath := flag.String("fontpath", "", "List of font directories")
	sizes := flag.String("sizes", "12,24", "Comma-separated point sizes of the font")
	prefix := flag.String("prefix", emoji.AssetPrefix, "Name prefix of emoji textures")
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := newConf(*tlevel)
	conf["emoji.assets"] = *assetdir
	conf["emoji.font"] = *fontname
	conf["emoji.sizes"] = *sizes
	conf["emoji.prefix"] = *prefix
	conf[resources.FontPathKey] = *fontpath
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	pterm.Info.Println("Welcome to the Emoji CLI") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up interpreter
	intp := NewIntp(conf)
	if err := intp.loadFont(conf.GetString("emoji.font"), parseSizes(conf.GetString("emoji.sizes"))); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	if dir := conf.GetString("emoji.assets"); dir != "" {
		if err := intp.loadAssets(dir); err != nil {
			tracer().Errorf(err.Error())
			os.Exit(4)
		}
	}
	repl, err := readline.NewEx(&readline.Config{
		Prompt:       "emoji > ",
		AutoComplete: completer{intp},
	})
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL() // go into interactive mode
}

// tracedPackages are the tracing keys of all packages of this module.
var tracedPackages = []string{"tyse.emoji", "tyse.fonts", "tyse.resources", "tyse.html"}

// newConf creates a configuration setting every package tracer to tlevel.
func newConf(tlevel string) testconfig.Conf {
	conf := testconfig.Conf{"tracing.adapter": "go"}
	for _, key := range tracedPackages {
		conf["trace."+key] = tlevel
	}
	return conf
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func parseSizes(s string) []float64 {
	var sizes []float64
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f == "" {
			continue
		}
		pt, err := strconv.ParseFloat(f, 64)
		if err != nil {
			tracer().Errorf("ignoring font size %q: %v", f, err)
			continue
		}
		sizes = append(sizes, pt)
	}
	return sizes
}

// configuredPrefix returns the asset prefix from conf, defaulting to emoji.AssetPrefix.
func configuredPrefix(conf schuko.Configuration) string {
	if conf == nil || conf.GetString("emoji.prefix") == "" {
		return emoji.AssetPrefix
	}
	return conf.GetString("emoji.prefix")
}
