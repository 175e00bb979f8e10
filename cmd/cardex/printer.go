package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/kailas-cloud/cardex/internal/display"
	cataloguc "github.com/kailas-cloud/cardex/internal/usecase/catalog"
)

var (
	titleStyle   = color.New(color.FgCyan, color.Bold).SprintFunc()
	companyStyle = color.New(color.FgYellow).SprintFunc()
	labelStyle   = color.New(color.Faint).SprintFunc()
	benefitStyle = color.New(color.FgGreen, color.Bold).SprintFunc()
	scoreStyle   = color.New(color.FgMagenta).SprintFunc()
)

// printCards writes one browse page in a terminal-friendly layout.
func printCards(w io.Writer, out cataloguc.Output) {
	if out.Fallback {
		fmt.Fprintln(w, labelStyle("similarity index unavailable, showing unranked results"))
	}
	if len(out.Terms) > 1 {
		fmt.Fprintf(w, "%s %s\n", labelStyle("matched terms:"), strings.Join(out.Terms, ", "))
	}
	if len(out.Items) == 0 {
		fmt.Fprintln(w, "조건에 맞는 카드가 없습니다.")
		return
	}

	for i := range out.Items {
		c := display.FromResult(&out.Items[i])
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%s  %s", titleStyle(c.Title), companyStyle(c.Company))
		if c.Date != "" {
			fmt.Fprintf(w, " %s", labelStyle(c.Date))
		}
		if c.Score != nil {
			fmt.Fprintf(w, " %s", scoreStyle(fmt.Sprintf("[%.3f]", *c.Score)))
		}
		fmt.Fprintln(w)

		if len(c.Fees) > 0 {
			fmt.Fprintln(w, labelStyle("  - 연회비 -"))
			for _, f := range c.Fees {
				fmt.Fprintf(w, "    %s\n", f)
			}
		}
		if len(c.Benefits) > 0 {
			fmt.Fprintln(w, labelStyle("  - 혜택 -"))
			for _, b := range c.Benefits {
				fmt.Fprintf(w, "    %s\n", benefitStyle(b.Title))
				for _, d := range b.Details {
					fmt.Fprintf(w, "      %s\n", d)
				}
			}
		}
		if c.URL != "" {
			fmt.Fprintf(w, "  %s\n", c.URL)
		}
	}

	p := out.Page
	fmt.Fprintf(w, "\n%s\n", labelStyle(fmt.Sprintf("%d / %d (%d cards)", p.Num(), p.Count(), p.Total())))
}

// printTerms writes an expansion one term per line, the original first.
func printTerms(w io.Writer, terms []string) {
	for i, t := range terms {
		if i == 0 {
			fmt.Fprintln(w, titleStyle(t))
			continue
		}
		fmt.Fprintf(w, "  %s\n", t)
	}
}
