// Copyright 2025 Sonic Labs
// This file is part of Bootmc, a Monte Carlo testing toolkit
//
// Bootmc is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Bootmc is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Bootmc. If not, see <http://www.gnu.org/licenses/>.

package simulation

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// ReportRow is the aggregated result of one configuration cell: the
// distinguishing configuration columns, one empirical rejection rate per
// decision rule, and the count of excluded replications.
type ReportRow struct {
	Design       string
	Distribution string
	SampleSize   int
	Significance float64
	Rates        []float64
	Excluded     int
}

// Report is the result table of a sweep. Rows appear in sweep insertion
// order.
type Report struct {
	RuleNames []string
	Rows      []ReportRow
}

// NewReport creates an empty report for the given decision rules.
func NewReport(ruleNames []string) *Report {
	return &Report{RuleNames: ruleNames}
}

// Add appends one aggregated row.
func (r *Report) Add(row ReportRow) {
	r.Rows = append(r.Rows, row)
}

// Render renders the report as a text table.
func (r *Report) Render() string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)

	header := table.Row{"design", "distribution", "n", "level"}
	for _, name := range r.RuleNames {
		header = append(header, name)
	}
	header = append(header, "excluded")
	t.AppendHeader(header)

	for _, row := range r.Rows {
		cells := table.Row{row.Design, row.Distribution, row.SampleSize, row.Significance}
		for _, rate := range row.Rates {
			cells = append(cells, fmt.Sprintf("%.4f", rate))
		}
		cells = append(cells, row.Excluded)
		t.AppendRow(cells)
	}
	return t.Render()
}

// SqliteCreate returns the CREATE TABLE statement for persisting report rows.
func (r *Report) SqliteCreate() string {
	cols := []string{"design TEXT", "distribution TEXT", "n INTEGER", "level REAL"}
	for _, name := range r.RuleNames {
		cols = append(cols, fmt.Sprintf("%s_rate REAL", strings.ReplaceAll(name, "-", "_")))
	}
	cols = append(cols, "excluded INTEGER")
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS rejection_rates (%s)", strings.Join(cols, ", "))
}

// SqliteInsert returns the INSERT statement matching SqliteCreate.
func (r *Report) SqliteInsert() string {
	n := 5 + len(r.RuleNames)
	marks := strings.Repeat("?, ", n-1) + "?"
	return fmt.Sprintf("INSERT INTO rejection_rates VALUES (%s)", marks)
}

// Values returns the report rows as insertable value tuples.
func (r *Report) Values() [][]any {
	values := make([][]any, 0, len(r.Rows))
	for _, row := range r.Rows {
		v := []any{row.Design, row.Distribution, row.SampleSize, row.Significance}
		for _, rate := range row.Rates {
			v = append(v, rate)
		}
		v = append(v, row.Excluded)
		values = append(values, v)
	}
	return values
}
