package engines

// `htmlmin` is a primitive not-so-correct HTML minimizer engine.
// With `minifyScripts` and `minifyStyles` it also runs inline scripts
// and styles through jsmin and cssmin.

import (
	"github.com/dchest/htmlmin"

	"github.com/nkls/cssopt/preset"
)

func init() {
	Register("htmlmin", makeHTMLMin)
}

type HTMLMin struct {
	opts htmlmin.Options
}

func makeHTMLMin(opts preset.Options) (Engine, error) {
	scripts, err := boolOption(opts, "minifyScripts", false)
	if err != nil {
		return nil, err
	}
	styles, err := boolOption(opts, "minifyStyles", false)
	if err != nil {
		return nil, err
	}
	unquote, err := boolOption(opts, "unquoteAttrs", false)
	if err != nil {
		return nil, err
	}
	return &HTMLMin{opts: htmlmin.Options{
		MinifyScripts: scripts,
		MinifyStyles:  styles,
		UnquoteAttrs:  unquote,
	}}, nil
}

func (e *HTMLMin) Name() string { return "htmlmin" }

func (e *HTMLMin) Minify(in []byte) ([]byte, error) {
	return htmlmin.Minify(in, &e.opts)
}
