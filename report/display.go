package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"clite/ast"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// SetColor enables or disables coloured output globally.
func SetColor(enabled bool) {
	if enabled {
		pterm.EnableColor()
	} else {
		pterm.DisableColor()
	}
}

// displayTagged displays a message preceded by a highlighted tag.
func (r *Reporter) displayTagged(style *pterm.Style, fg pterm.Color, tag, msg string) {
	r.printf("%s %s\n", style.Sprint(tag), fg.Sprint(msg))
}

// -----------------------------------------------------------------------------

// displayDiagnostic displays a banner naming the kind of error and the program
// followed by the message itself.
func (r *Reporter) displayDiagnostic(progPath string, d Diagnostic) {
	kindStr := d.Kind.String() + " Error"

	bannerLen := pterm.GetTerminalWidth() / 2
	if bannerLen > 50 {
		bannerLen = 50
	}

	dashCount := bannerLen - len(progPath) - len(kindStr) - 1
	if dashCount < 2 {
		dashCount = 2
	}

	r.printf("\n-- %s %s %s\n", ErrorStyleBG.Sprint(kindStr), strings.Repeat("-", dashCount), InfoColorFG.Sprint(progPath))

	if d.Function != "" {
		r.printf("in function %s: ", InfoColorFG.Sprint(d.Function))
	}

	r.printf("%s\n", d.Message)

	if d.Node != nil {
		r.printf("  |  %s\n", d.Node.Repr())
	}
}

const internalErrorPostlude = `
This is likely a bug in the parser that produced the program.
The checker cannot check a malformed syntax tree.`

func (r *Reporter) displayInternalError(msg string) {
	r.printf("\n%s %s\n", ErrorStyleBG.Sprint("Internal Error"), ErrorColorFG.Sprint(msg))
	r.printf("%s\n", InfoColorFG.Sprint(internalErrorPostlude))
}

// -----------------------------------------------------------------------------

// displayHeader displays the checker information before checking begins
func (r *Reporter) displayHeader(version, progPath string) {
	r.printf("clite %s -- program: %s\n", InfoColorFG.Sprint("v"+version), InfoColorFG.Sprint(progPath))
}

// displayEnvironment displays a type environment as a two column table
func (r *Reporter) displayEnvironment(title string, decls ast.Declarations) {
	data := pterm.TableData{{"Name", "Type"}}
	for _, decl := range decls {
		data = append(data, []string{decl.Name, decl.Type.Repr()})
	}

	r.printf("\n%s\n", InfoColorFG.Sprint(title))

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		r.printf("%s\n", ErrorColorFG.Sprint("failed to render environment: "+err.Error()))
		return
	}

	r.printf("%s\n", table)
}

const maxPhaseLength = len("Decoding")

// beginPhase displays the beginning of a checking phase.  The spinner is drawn
// by pterm on its default output (stdout), not on r.out.
func (r *Reporter) beginPhase(phase string) {
	r.currentPhase = phase
	phaseText := phase + "..." + strings.Repeat(" ", maxPhaseLength-len(phase)+2)
	r.phaseSpinner = pterm.DefaultSpinner.WithStyle(pterm.NewStyle(InfoColorFG))

	r.phaseSpinner.SuccessPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: SuccessStyleBG,
			Text:  "Done",
		},
	}

	r.phaseSpinner.FailPrinter = &pterm.PrefixPrinter{
		MessageStyle: pterm.NewStyle(pterm.FgDefault),
		Prefix: pterm.Prefix{
			Style: ErrorStyleBG,
			Text:  "Fail",
		},
	}

	// Start runs a copy of the spinner: keep the running one so it can be
	// stopped by endPhase
	r.phaseSpinner, _ = r.phaseSpinner.Start(phaseText)
	r.phaseStartTime = time.Now()
}

// endPhase displays the end of a checking phase if one is running
func (r *Reporter) endPhase(success bool) {
	if r.phaseSpinner != nil {
		if success {
			r.phaseSpinner.Success(
				r.currentPhase+strings.Repeat(" ", maxPhaseLength-len(r.currentPhase)+2),
				fmt.Sprintf("(%.3fs)", time.Since(r.phaseStartTime).Seconds()),
			)
		} else {
			r.phaseSpinner.Fail(r.currentPhase + strings.Repeat(" ", maxPhaseLength-len(r.currentPhase)+2))
		}

		r.phaseSpinner = nil
	}
}

// displayFinished displays the closing summary of a check
func (r *Reporter) displayFinished(success bool, errorCount int) {
	r.printf("\n")

	if success {
		if r.logLevel == LogLevelVerbose {
			r.printf("%s", SuccessColorFG.Sprint("No type errors! "))
		} else {
			r.printf("%s", SuccessColorFG.Sprint("All done! "))
		}
	} else {
		r.printf("%s", ErrorColorFG.Sprint("Oh no! "))
	}

	switch errorCount {
	case 0:
		r.printf("(%s errors)\n", SuccessColorFG.Sprint(0))
	case 1:
		r.printf("(%s error)\n", ErrorColorFG.Sprint(1))
	default:
		r.printf("(%s errors)\n", ErrorColorFG.Sprint(errorCount))
	}
}
