package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/diillson/lease-exit-go/internal/domain/entity"
	"github.com/diillson/lease-exit-go/internal/domain/repository"
	"github.com/diillson/lease-exit-go/pkg/money"
	"github.com/jung-kurt/gofpdf"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

// ExportToCSV writes the ranked scenarios, followed by the timeline when the
// report has one.
func (r *ExportRepositoryImpl) ExportToCSV(report entity.Report, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	headers := []string{"Rank", "Scenario", "Total Cost", "Net Cost", "Best", "Incomplete", "Line Items", "Warnings"}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, row := range report.Scenarios {
		record := []string{
			fmt.Sprintf("%d", row.Rank),
			row.Label,
			row.TotalCost,
			row.NetCost,
			yesNo(row.Best),
			yesNo(row.Incomplete),
			strings.Join(row.LineItems, "\n"),
			cleanRichTags(strings.Join(row.Warnings, "\n")),
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	if len(report.Timeline) > 0 {
		// Linha em branco separa a tabela de cenários da linha do tempo
		if err := writer.Write([]string{}); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
		header := append([]string{"Month"}, report.TimelineColumns...)
		header = append(header, "Cheapest")
		if err := writer.Write(header); err != nil {
			return "", fmt.Errorf("error writing CSV header: %w", err)
		}
		for _, row := range report.Timeline {
			record := append([]string{fmt.Sprintf("%d", row.Month)}, row.Costs...)
			record = append(record, row.Cheapest)
			if err := writer.Write(record); err != nil {
				return "", fmt.Errorf("error writing CSV record: %w", err)
			}
		}
	}

	if report.Generator != "" {
		if err := writer.Write([]string{}); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
		if err := writer.Write([]string{"Generated by", report.Generator, report.ID}); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("error flushing CSV file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToJSON(report entity.Report, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToPDF(report entity.Report, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}
	bestColor := [3]int{0, 128, 0}

	sectionTitle := func(title string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)
	}

	drawSection := func(title string, content string) {
		content = cleanRichTags(content)
		if content == "" {
			return
		}
		sectionTitle(title)
		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(6)
	}

	footer := func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		generator := report.Generator
		if generator == "" {
			generator = "lease-exit"
		}
		footerText := fmt.Sprintf("Generated by %s | %s | %s", generator, report.ID, report.GeneratedAt.Format("2006-01-02"))
		pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Page %d", pdf.PageNo())), "", 0, "R", false, 0, "")
	}
	pdf.SetFooterFunc(footer)

	pdf.AddPage()

	// Cabeçalho
	pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
	pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
	pdf.SetFont("Arial", "B", 14)
	title := report.LeaseName
	if title == "" {
		title = "Lease"
	}
	if len(title) > 80 {
		title = title[:77] + "..."
	}
	pdf.CellFormat(0, 12, tr(fmt.Sprintf("  Lease Exit Report: %s", title)), "", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	pdf.SetFillColor(240, 240, 240)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	best := report.BestOption
	if best == "" {
		best = "n/a"
	}
	pdf.CellFormat(0, 8, tr(fmt.Sprintf("  Best option: %s  |  Savings vs. return: %s", best, report.SavingsVsReturn)), "", 1, "L", true, 0, "")
	pdf.Ln(8)

	var summary []string
	for _, item := range report.Summary {
		summary = append(summary, fmt.Sprintf("%s: %s", item.Label, item.Value))
	}
	drawSection("Lease Summary", strings.Join(summary, "\n"))

	sectionTitle("Scenario Comparison")
	widths := []float64{12, 58, 40, 40, 40}
	pdf.SetFont("Arial", "B", 10)
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	for i, h := range []string{"#", "Scenario", "Total Cost", "Net Cost", "Status"} {
		pdf.CellFormat(widths[i], 7, tr(h), "B", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, row := range report.Scenarios {
		status := ""
		switch {
		case row.Best:
			status = "Best"
			pdf.SetTextColor(bestColor[0], bestColor[1], bestColor[2])
		case row.Incomplete:
			status = "Incomplete"
			pdf.SetTextColor(128, 128, 128)
		default:
			pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		}
		cells := []string{fmt.Sprintf("%d", row.Rank), row.Label, row.TotalCost, row.NetCost, status}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, tr(c), "", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
	pdf.Ln(6)

	if report.Equity != "" {
		drawSection("Equity", report.Equity)
	}

	for _, row := range report.Scenarios {
		content := strings.Join(row.LineItems, "\n")
		if len(row.Warnings) > 0 {
			content += "\n\nWarnings:\n- " + strings.Join(row.Warnings, "\n- ")
		}
		drawSection(fmt.Sprintf("%d. %s", row.Rank, row.Label), content)
	}

	if len(report.Timeline) > 0 {
		var lines []string
		for _, row := range report.Timeline {
			lines = append(lines, fmt.Sprintf("Month +%d: %s (%s)", row.Month, row.Cheapest, money.FormatFloat(row.CheapestCost)))
		}
		drawSection("Cheapest Option by Month", strings.Join(lines, "\n"))
		drawSection("Crossovers", strings.Join(report.Crossovers, "\n"))
	}
	if report.Recommendation != nil {
		drawSection("Recommendation", report.Recommendation.Message)
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// --- Funções Auxiliares ---

// generateFilename cria um nome de arquivo único com timestamp e garante que o diretório exista.
func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

// Regex para limpar formatação pterm (rich tags) e sequências ANSI de cor/estilo.
var richTagRegex = regexp.MustCompile(`\[/?([a-zA-Z]+|#[0-9a-fA-F]{6})\]`)
var ansiRegex = regexp.MustCompile(`\x1B\[[0-9;]*[A-Za-z]`)

// cleanRichTags remove tags de formatação do pterm e sequências ANSI.
func cleanRichTags(text string) string {
	text = richTagRegex.ReplaceAllString(text, "")
	text = ansiRegex.ReplaceAllString(text, "")
	return text
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
