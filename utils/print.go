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

package utils

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

// Printer is the output surface of the engine: a report destination that is
// written once at the end of a sweep.
//
//go:generate mockgen -source print.go -destination print_mock.go -package utils
type Printer interface {
	Print() error
	Close()
}

// Printers fans a report out to several destinations.
type Printers struct {
	printers []Printer
}

// NewPrinters creates an empty printer set.
func NewPrinters() *Printers {
	return &Printers{[]Printer{}}
}

// AddPrinter appends a printer.
func (ps *Printers) AddPrinter(p Printer) *Printers {
	ps.printers = append(ps.printers, p)
	return ps
}

// Print writes the report to all destinations, collecting errors.
func (ps *Printers) Print() error {
	var err error
	for _, p := range ps.printers {
		err = errors.Join(err, p.Print())
	}
	return err
}

// Close releases all destinations.
func (ps *Printers) Close() {
	for _, p := range ps.printers {
		p.Close()
	}
}

// PrinterToWriter writes the wrapped render function to an io.Writer.
type PrinterToWriter struct {
	w io.Writer
	f func() string
}

func (p *PrinterToWriter) Print() error {
	_, err := fmt.Fprintln(p.w, p.f())
	return err
}

func (p *PrinterToWriter) Close() {
}

// NewPrinterToWriter creates a printer for any io.Writer.
func NewPrinterToWriter(w io.Writer, f func() string) *PrinterToWriter {
	return &PrinterToWriter{w, f}
}

// NewPrinterToConsole creates a printer writing to stdout.
func NewPrinterToConsole(f func() string) *PrinterToWriter {
	return &PrinterToWriter{os.Stdout, f}
}

// AddPrinterToConsole appends a console printer unless disabled.
func (ps *Printers) AddPrinterToConsole(isDisabled bool, f func() string) *Printers {
	if isDisabled {
		return ps
	}
	return ps.AddPrinter(NewPrinterToConsole(f))
}

// PrinterToFile appends the wrapped render function to a file.
type PrinterToFile struct {
	filepath string
	f        func() string
}

func (p *PrinterToFile) Print() (err error) {
	file, err := os.OpenFile(p.filepath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("unable to print to file %s; %v", p.filepath, err)
	}
	defer func(file *os.File) {
		err = errors.Join(err, file.Close())
	}(file)
	_, err = file.WriteString(p.f())
	return err
}

func (p *PrinterToFile) Close() {
}

// NewPrinterToFile creates a file printer.
func NewPrinterToFile(filepath string, f func() string) *PrinterToFile {
	return &PrinterToFile{filepath, f}
}

// AddPrinterToFile appends a file printer when a path is given.
func (ps *Printers) AddPrinterToFile(filepath string, f func() string) *Printers {
	if filepath != "" {
		ps.AddPrinter(NewPrinterToFile(filepath, f))
	}
	return ps
}

// PrinterToDb inserts report rows into a database. The wrapped function
// returns the value tuples to insert.
type PrinterToDb struct {
	db     *sql.DB
	insert string
	f      func() [][]any
}

func (p *PrinterToDb) Print() (err error) {
	// Transaction is used to improve efficiency over bulk insert
	tx, err := p.db.Begin()
	if err != nil {
		return fmt.Errorf("unable to begin a transaction; %v", err)
	}
	stmt, err := p.db.Prepare(p.insert)
	if err != nil {
		return fmt.Errorf("unable to prepare statement %s; %v", p.insert, err)
	}
	defer func(stmt *sql.Stmt) {
		err = errors.Join(err, stmt.Close())
	}(stmt)

	for _, value := range p.f() {
		if _, err = tx.Stmt(stmt).Exec(value...); err != nil {
			return errors.Join(err, tx.Rollback())
		}
	}
	return tx.Commit()
}

func (p *PrinterToDb) Close() {
	if err := p.db.Close(); err != nil {
		panic(err)
	}
}

// NewPrinterToSqlite3 creates a sqlite3 printer, creating the target table
// if it does not exist yet.
func NewPrinterToSqlite3(conn string, create string, insert string, f func() [][]any) (*PrinterToDb, error) {
	db, err := sql.Open("sqlite3", conn)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection to sqlite3 %s; %v", conn, err)
	}
	if _, err = db.Exec(create); err != nil {
		return nil, fmt.Errorf("failed to create/replace table on %s; %v", conn, err)
	}
	return &PrinterToDb{db, insert, f}, nil
}

// AddPrinterToSqlite3 appends a sqlite3 printer when a connection string is
// given.
func (ps *Printers) AddPrinterToSqlite3(conn string, create string, insert string, f func() [][]any) (*Printers, error) {
	if conn == "" {
		return ps, nil
	}
	p, err := NewPrinterToSqlite3(conn, create, insert, f)
	if err != nil {
		return nil, err
	}
	return ps.AddPrinter(p), nil
}
