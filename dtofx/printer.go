// SPDX-FileCopyrightText: 2023 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package dtofx

import (
	"fmt"
	"io"
	"log"
	"os"
	"reflect"

	"github.com/xmidt-org/arrangedto"
	"github.com/xmidt-org/arrangedto/internal/dtoreflect"
	"go.uber.org/fx"
)

// Module is the prefix on every message this package prints.
const Module = "ArrangeDTO"

// Prepend creates the standard format for information output that uber/fx uses.
// It returns a string of the form "[module] template".
func Prepend(module, template string) string {
	return "[" + module + "] " + template
}

// PrinterFunc is a function type that implements fx.Printer.
type PrinterFunc func(string, ...interface{})

// Printf implements fx.Printer.  No newline is appended.
func (pf PrinterFunc) Printf(template string, args ...interface{}) {
	pf(template, args...)
}

// PrinterWriter creates an fx.Printer that writes each message, followed by a
// newline, to w.  Any error from w results in a panic.
func PrinterWriter(w io.Writer) fx.Printer {
	return PrinterFunc(func(template string, args ...interface{}) {
		if _, err := fmt.Fprintf(w, template+"\n", args...); err != nil {
			panic(err)
		}
	})
}

var defaultPrinter fx.Printer = log.New(os.Stderr, "", log.LstdFlags)

// DefaultPrinter returns the fx.Printer used when no printer component is supplied.
// This outputs to os.Stderr, in keeping with uber/fx's behavior.
func DefaultPrinter() fx.Printer {
	return defaultPrinter
}

// NewModulePrinter decorates an fx.Printer so that each message is prefixed with
// the given module.  If p is nil, DefaultPrinter is decorated instead.
func NewModulePrinter(module string, p fx.Printer) fx.Printer {
	p = dtoreflect.Safe[fx.Printer](p, DefaultPrinter())
	return PrinterFunc(func(template string, args ...interface{}) {
		p.Printf(Prepend(module, template), args...)
	})
}

// printDeclarations writes one line per declared property, listing the kinds
// in the order they will be applied to the target.
func printDeclarations(p fx.Printer, key string, target reflect.Type, ds arrangedto.Declarations) {
	for _, property := range ds.Properties() {
		kinds := make([]string, 0, len(ds[property]))
		for _, d := range ds[property] {
			kinds = append(kinds, d.Kind)
		}

		p.Printf("DECLARE\t[%s] => %s.%s %q", key, target, property, kinds)
	}
}

// Logger sets p as the fx.Logger and makes it available as the unnamed fx.Printer
// component, which Declare and ProvideCollections print through.
func Logger(p fx.Printer) fx.Option {
	return fx.Options(
		fx.Logger(p),

		// fx.Supply would produce a component of the concrete type
		fx.Provide(
			func() fx.Printer {
				return p
			},
		),
	)
}

// LoggerWriter is Logger with a PrinterWriter.
func LoggerWriter(w io.Writer) fx.Option {
	return Logger(PrinterWriter(w))
}

// t is implemented by both *testing.T and *testing.B
type t interface {
	Name() string
	Logf(string, ...interface{})
}

// TestLogger uses Logger to establish a *testing.T or *testing.B as the
// sink for uber/fx and arrangedto logging
func TestLogger(t t) fx.Option {
	return Logger(
		PrinterFunc(func(template string, args ...interface{}) {
			t.Logf(t.Name()+" "+template, args...)
		}),
	)
}
