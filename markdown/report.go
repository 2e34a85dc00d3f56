// Package markdown writes crawl reports as GitHub-flavored markdown.
package markdown

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/recipecrawl"
	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
)

// ReportWriter renders a recipecrawl.Report as markdown.
type ReportWriter struct {
	output io.Writer

	// imageBase is prefixed to gallery file names in image links.
	imageBase string
}

// NewReportWriter creates a ReportWriter that outputs to w. Gallery images
// are linked as imageBase/<file>.
func NewReportWriter(w io.Writer, imageBase string) *ReportWriter {
	return &ReportWriter{output: w, imageBase: imageBase}
}

// SaveReport writes report to path, linking gallery images relative to it.
func SaveReport(report *recipecrawl.Report, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	imageBase := report.GalleryDir
	if rel, err := filepath.Rel(dir, report.GalleryDir); err == nil {
		imageBase = filepath.ToSlash(rel)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := NewReportWriter(f, imageBase).Write(report); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write outputs the full report.
func (w *ReportWriter) Write(report *recipecrawl.Report) error {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeFrequencies(md, report)
	w.writeRecipes(md, report)
	w.writeGallery(md, report)
	w.writeFooter(md)

	return md.Build()
}

func (w *ReportWriter) writeHeader(md *markdown.Markdown, report *recipecrawl.Report) {
	md.H1("Recipe Crawl Report")
	md.PlainText("")

	recipes := 0
	if report.Recipes != nil {
		recipes = report.Recipes.Len()
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Run ID", "`" + report.RunID + "`"},
			{"Started", report.StartedAt.Format("2006-01-02 15:04:05 MST")},
			{"Duration", report.Duration.Round(time.Second).String()},
			{"Recipes", strconv.Itoa(recipes)},
			{"Pages Crawled", strconv.Itoa(report.Visited)},
			{"Failed Link Fetches", strconv.Itoa(report.Failed)},
			{"Visited Filter False Positives", strconv.Itoa(report.FalsePositives)},
			{"Output File", "`" + report.OutputFile + "`"},
		},
	})
	md.PlainText("")
}

func (w *ReportWriter) writeFrequencies(md *markdown.Markdown, report *recipecrawl.Report) {
	md.H2("Title Frequency")
	md.PlainText("")

	if len(report.Frequencies) == 0 {
		md.PlainText("No recipes collected.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(report.Frequencies))
	for i, tc := range report.Frequencies {
		rows = append(rows, []string{strconv.Itoa(i + 1), escapeCell(tc.Title), strconv.Itoa(tc.Count)})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Rank", "Title", "Count"},
		Rows:   rows,
	})

	w.writePieChart(md, report.Frequencies)
}

// writePieChart writes a mermaid pie chart of the title counts.
func (w *ReportWriter) writePieChart(md *markdown.Markdown, counts []recipecrawl.TitleCount) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle(fmt.Sprintf("Top %d Recipe Titles", len(counts))),
		piechart.WithShowData(true),
	)
	for _, tc := range counts {
		chart.LabelAndIntValue(strings.ReplaceAll(tc.Title, `"`, "'"), uint64(tc.Count))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

func (w *ReportWriter) writeRecipes(md *markdown.Markdown, report *recipecrawl.Report) {
	if report.Recipes == nil || report.Recipes.Len() == 0 {
		return
	}

	md.H2("Recipes")
	md.PlainText("")

	items := make([]string, 0, report.Recipes.Len())
	for _, r := range report.Recipes.Recipes() {
		items = append(items, fmt.Sprintf("[%s](%s)", escapeLinkText(r.Title), r.URL))
	}
	md.BulletList(items...)
	md.PlainText("")
}

func (w *ReportWriter) writeGallery(md *markdown.Markdown, report *recipecrawl.Report) {
	md.H2("Gallery")
	md.PlainText("")

	if len(report.Gallery) == 0 {
		md.Note("No recipe images were rendered.")
		md.PlainText("")
		return
	}

	for _, e := range report.Gallery {
		md.H3(e.Title)
		md.PlainText("")
		md.PlainTextf("![%s](%s)", escapeLinkText(e.Title), w.imagePath(e.File))
		md.PlainText("")

		details := fmt.Sprintf("%dx%d %s, %s", e.Width, e.Height, e.Format, recipecrawl.FormatBytes(e.Bytes))
		if e.Caption != "" {
			details += ", " + e.Caption
		}
		md.PlainTextf("*%s*", details)
		md.PlainText("")
	}
}

func (w *ReportWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Report generated by recipecrawl*")
}

func (w *ReportWriter) imagePath(file string) string {
	if w.imageBase == "" {
		return file
	}
	return strings.TrimSuffix(w.imageBase, "/") + "/" + file
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

var linkTextEscaper = strings.NewReplacer(`\`, `\\`, "[", `\[`, "]", `\]`)

// escapeLinkText escapes characters that would end a link label early.
func escapeLinkText(s string) string {
	return linkTextEscaper.Replace(s)
}
