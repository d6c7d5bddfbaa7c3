// Command mojangson formats Mojangson text and converts item tags to and
// from a YAML description.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	json "github.com/goccy/go-json"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/reoring/mojangson"
	"github.com/reoring/mojangson/i18n"
	"github.com/reoring/mojangson/item"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "mojangson"})
	if err := run(os.Args[1:], os.Stdin, os.Stdout, logger); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		report(logger, err)
		os.Exit(1)
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "mojangson CLI\n\nUsage:\n  mojangson fmt [FILE]        print canonical Mojangson (stdin when FILE is omitted or -)\n  mojangson item [--json] ITEM.yaml\n                              build an item tag from a YAML description\n  mojangson inspect [FILE]    print the properties of an item tag as YAML\n\nCommon flags:\n  --strict   reject whitespace outside strings\n  --verbose  log debug output\n  --lang     message language (en, ja)")
}

// options holds the flags shared by every subcommand.
type options struct {
	strict  bool
	verbose bool
	lang    string
}

func (o *options) register(fs *pflag.FlagSet) {
	fs.BoolVar(&o.strict, "strict", false, "reject whitespace outside strings")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "log debug output")
	fs.StringVar(&o.lang, "lang", "en", "message language (en, ja)")
}

func (o *options) apply(logger *log.Logger) {
	i18n.SetLanguage(o.lang)
	if o.verbose {
		logger.SetLevel(log.DebugLevel)
	}
}

func (o *options) decodeOpt() mojangson.DecodeOpt {
	return mojangson.DecodeOpt{Strict: o.strict}
}

func run(args []string, stdin io.Reader, stdout io.Writer, logger *log.Logger) error {
	if len(args) < 1 {
		usage(os.Stderr)
		return errors.New("missing command")
	}
	switch args[0] {
	case "fmt":
		return fmtCmd(args[1:], stdin, stdout, logger)
	case "item":
		return itemCmd(args[1:], stdout, logger)
	case "inspect":
		return inspectCmd(args[1:], stdin, stdout, logger)
	case "help", "-h", "--help":
		usage(stdout)
		return nil
	default:
		usage(os.Stderr)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func fmtCmd(args []string, stdin io.Reader, stdout io.Writer, logger *log.Logger) error {
	var o options
	fs := pflag.NewFlagSet("fmt", pflag.ContinueOnError)
	o.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	o.apply(logger)

	text, err := readInput(fs.Args(), stdin, logger)
	if err != nil {
		return err
	}
	codec := mojangson.Text(o.decodeOpt())
	t, err := codec.Decode(strings.TrimSpace(text))
	if err != nil {
		return err
	}
	logger.Debug("decoded", "kind", t.Kind())
	out, err := codec.Encode(t)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, out)
	return err
}

func itemCmd(args []string, stdout io.Writer, logger *log.Logger) error {
	var o options
	var asJSON bool
	fs := pflag.NewFlagSet("item", pflag.ContinueOnError)
	o.register(fs)
	fs.BoolVar(&asJSON, "json", false, "print the tag as a JSON string")
	if err := fs.Parse(args); err != nil {
		return err
	}
	o.apply(logger)
	if fs.NArg() != 1 {
		return errors.New("item: expected exactly one ITEM.yaml argument")
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	defer f.Close()
	p, err := loadItemFile(f)
	if err != nil {
		return err
	}
	logger.Debug("loaded item file", "file", fs.Arg(0), "enchantments", len(p.Enchantments), "lore", len(p.Lore))

	tag, err := item.FromProperties(&p)
	if err != nil {
		return err
	}
	if asJSON {
		data, err := json.Marshal(tag)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(stdout, string(data))
		return err
	}
	_, err = fmt.Fprintln(stdout, tag.Text())
	return err
}

func inspectCmd(args []string, stdin io.Reader, stdout io.Writer, logger *log.Logger) error {
	var o options
	fs := pflag.NewFlagSet("inspect", pflag.ContinueOnError)
	o.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	o.apply(logger)

	text, err := readInput(fs.Args(), stdin, logger)
	if err != nil {
		return err
	}
	tag := item.FromText(strings.TrimSpace(text), item.WithDecodeOptions(o.decodeOpt()))
	p, err := tag.Properties()
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(stdout)
	enc.SetIndent(2)
	if err := enc.Encode(itemFileOf(p)); err != nil {
		return err
	}
	return enc.Close()
}

func readInput(args []string, stdin io.Reader, logger *log.Logger) (string, error) {
	var (
		data []byte
		err  error
	)
	switch {
	case len(args) == 0 || args[0] == "-":
		logger.Debug("reading stdin")
		data, err = io.ReadAll(stdin)
	case len(args) == 1:
		logger.Debug("reading file", "path", args[0])
		data, err = os.ReadFile(args[0])
	default:
		return "", fmt.Errorf("expected at most one input file, got %d", len(args))
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// report logs err, one line per issue, in the selected language.
func report(logger *log.Logger, err error) {
	if iss, ok := mojangson.AsIssues(err); ok {
		for _, it := range iss {
			logger.Error(i18n.T(it.Code, map[string]string{"path": it.Path, "detail": it.Message}))
		}
		return
	}
	var pe *mojangson.ParseError
	if errors.As(err, &pe) {
		logger.Error(i18n.T(pe.Issue().Code, map[string]string{"detail": pe.Error()}), "offset", pe.Offset)
		return
	}
	var ue *mojangson.UnsupportedKindError
	if errors.As(err, &ue) {
		logger.Error(i18n.T(mojangson.CodeUnsupportedKind, map[string]string{"detail": ue.Type}))
		return
	}
	logger.Error(err.Error())
}
