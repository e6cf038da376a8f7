package exporting

import (
	"bytes"
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/hangar-api/internal/domain"
	"github.com/vfg2006/hangar-api/internal/usecases/access"
	"github.com/vfg2006/hangar-api/pkg/log"
	"github.com/xuri/excelize/v2"
)

const (
	consolidadoSheet = "Consolidado Geral"
	maxSheetName     = 31
)

var excelHeader = []any{
	"Tier", "Cliente", "Projeto", "Mês", "Status",
	"Receita Bruta", "Imposto %", "Receita Líquida", "Custo", "Observações",
}

// ExcelContentType é o MIME de planilhas xlsx
const ExcelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportExcel gera a planilha com a aba consolidada e uma aba por tier e por
// cliente, restrita aos tiers visíveis ao usuário.
func (s *Service) ExportExcel(ctx context.Context, p domain.Principal, tierIDs domain.IDList) (*bytes.Buffer, error) {
	var registros []domain.RegistroDetalhado
	percentuais := map[string]float64{}

	filter, ok := access.NarrowReport(p, domain.ReportFilter{TierIDs: tierIDs})
	if ok {
		var err error
		registros, err = s.registroRepo.ListDetalhados(ctx, filter)
		if err != nil {
			return nil, err
		}

		impostos, err := s.impostoRepo.ListImpostos(ctx, "", access.ScopeFor(p))
		if err != nil {
			return nil, err
		}
		for _, imposto := range impostos {
			percentuais[imposto.ID] = imposto.Percentual
		}
	}

	sortRegistros(registros)

	buf, err := buildWorkbook(registros, percentuais)
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar planilha: %w", err)
	}

	log.ForContext(ctx).Infof("exporting: planilha gerada com %d registros para %s", len(registros), p.UserID)
	return buf, nil
}

func sortRegistros(regs []domain.RegistroDetalhado) {
	slices.SortStableFunc(regs, func(a, b domain.RegistroDetalhado) int {
		return cmp.Or(
			strings.Compare(a.Tier.Nome, b.Tier.Nome),
			strings.Compare(a.Cliente.Nome, b.Cliente.Nome),
			strings.Compare(a.Projeto.Nome, b.Projeto.Nome),
			a.MesRef.Compare(b.MesRef),
			strings.Compare(string(a.Status), string(b.Status)),
			strings.Compare(a.ID, b.ID),
		)
	})
}

type workbook struct {
	file   *excelize.File
	header int
	money  int
	pct    int
	total  int
	names  map[string]bool
}

func buildWorkbook(registros []domain.RegistroDetalhado, percentuais map[string]float64) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	wb := &workbook{file: f, names: map[string]bool{}}
	if err := wb.styles(); err != nil {
		return nil, err
	}

	if err := f.SetSheetName("Sheet1", consolidadoSheet); err != nil {
		return nil, err
	}
	wb.names[strings.ToLower(consolidadoSheet)] = true
	if err := wb.fill(consolidadoSheet, registros, percentuais); err != nil {
		return nil, err
	}

	for _, group := range groupBy(registros, func(r domain.RegistroDetalhado) (string, string) { return r.Tier.ID, r.Tier.Nome }) {
		if err := wb.addSheet("Tier "+group.nome, group.registros, percentuais); err != nil {
			return nil, err
		}
	}
	for _, group := range groupBy(registros, func(r domain.RegistroDetalhado) (string, string) { return r.Cliente.ID, r.Cliente.Nome }) {
		if err := wb.addSheet("Cliente "+group.nome, group.registros, percentuais); err != nil {
			return nil, err
		}
	}

	f.SetActiveSheet(0)
	return f.WriteToBuffer()
}

func (wb *workbook) styles() error {
	var err error
	if wb.header, err = wb.file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"1F3864"}, Pattern: 1},
	}); err != nil {
		return err
	}
	if wb.money, err = wb.file.NewStyle(&excelize.Style{NumFmt: 4}); err != nil {
		return err
	}
	if wb.pct, err = wb.file.NewStyle(&excelize.Style{NumFmt: 2}); err != nil {
		return err
	}
	wb.total, err = wb.file.NewStyle(&excelize.Style{NumFmt: 4, Font: &excelize.Font{Bold: true}})
	return err
}

type registroGroup struct {
	nome      string
	registros []domain.RegistroDetalhado
}

// groupBy mantém a ordem de primeira aparição
func groupBy(regs []domain.RegistroDetalhado, key func(domain.RegistroDetalhado) (string, string)) []registroGroup {
	index := map[string]int{}
	var groups []registroGroup
	for _, r := range regs {
		id, nome := key(r)
		i, ok := index[id]
		if !ok {
			i = len(groups)
			index[id] = i
			groups = append(groups, registroGroup{nome: nome})
		}
		groups[i].registros = append(groups[i].registros, r)
	}
	return groups
}

// sheetName troca caracteres proibidos e corta em 31 caracteres. O Excel
// compara nomes de aba sem diferenciar maiúsculas.
func (wb *workbook) sheetName(raw string) string {
	clean := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return ' '
		}
		return r
	}, raw)
	clean = strings.Trim(strings.TrimSpace(clean), "'")
	if clean == "" {
		clean = "Aba"
	}

	name := truncate(clean, maxSheetName)
	for n := 2; wb.names[strings.ToLower(name)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		name = truncate(clean, maxSheetName-utf8.RuneCountInString(suffix)) + suffix
	}
	wb.names[strings.ToLower(name)] = true
	return name
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:n]))
}

func (wb *workbook) addSheet(raw string, registros []domain.RegistroDetalhado, percentuais map[string]float64) error {
	name := wb.sheetName(raw)
	if _, err := wb.file.NewSheet(name); err != nil {
		return err
	}
	return wb.fill(name, registros, percentuais)
}

func (wb *workbook) fill(sheet string, registros []domain.RegistroDetalhado, percentuais map[string]float64) error {
	f := wb.file

	header := excelHeader
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", "J1", wb.header); err != nil {
		return err
	}

	var bruta, liquida, custo decimal.Decimal
	row := 2
	for _, r := range registros {
		var imposto any
		if pct, ok := percentuais[r.ImpostoID]; ok {
			imposto = pct
		}
		var obs string
		if r.Observacoes != nil {
			obs = *r.Observacoes
		}

		values := []any{
			r.Tier.Nome, r.Cliente.Nome, r.Projeto.Nome, r.MesRef.Format("2006-01"), string(r.Status),
			money(r.ReceitaBruta), imposto, money(r.ReceitaLiquida), money(r.CustoProjetado), obs,
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}

		bruta = bruta.Add(decimal.NewFromFloat(r.ReceitaBruta))
		liquida = liquida.Add(decimal.NewFromFloat(r.ReceitaLiquida))
		custo = custo.Add(decimal.NewFromFloat(r.CustoProjetado))
		row++
	}

	if row > 2 {
		if err := wb.styleRange(sheet, "F", "F", 2, row-1, wb.money); err != nil {
			return err
		}
		if err := wb.styleRange(sheet, "G", "G", 2, row-1, wb.pct); err != nil {
			return err
		}
		if err := wb.styleRange(sheet, "H", "I", 2, row-1, wb.money); err != nil {
			return err
		}

		totals := []any{"Total", nil, nil, nil, nil,
			bruta.Round(2).InexactFloat64(), nil, liquida.Round(2).InexactFloat64(), custo.Round(2).InexactFloat64()}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &totals); err != nil {
			return err
		}
		if err := wb.styleRange(sheet, "A", "J", row, row, wb.total); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(sheet, "A", "E", 18); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "F", "I", 16); err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "J", "J", 40); err != nil {
		return err
	}
	return f.SetPanes(sheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
}

func (wb *workbook) styleRange(sheet, fromCol, toCol string, fromRow, toRow, style int) error {
	return wb.file.SetCellStyle(sheet, fmt.Sprintf("%s%d", fromCol, fromRow), fmt.Sprintf("%s%d", toCol, toRow), style)
}

func money(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
