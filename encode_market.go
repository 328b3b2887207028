package liquidity

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

const securitiesFile = "securities.jsonl"
const barFilesGlob = "[0-9][0-9][0-9][0-9].jsonl"

// This file contains code to persist market data in a folder, in a way that
// is still human-readable and git-friendly.
//
// The folder holds a securities definition file (one security per line) and
// one bar file per calendar year (one bar per line). Decoding reads the
// definitions then every year file; encoding regenerates all files and
// deletes year files that no longer hold any bar.

// jsecurity is the object read/written using the json parser.
type jsecurity struct {
	Ticker   string `json:"ticker"`
	ID       string `json:"id"`
	Currency string `json:"currency"`
}

// jbar is a single daily bar line in a year file.
type jbar struct {
	On     Date    `json:"on"`
	Ticker string  `json:"ticker"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// decodeSecurities parses a single file containing the securities definition.
// filename is for error message only.
func (m *MarketData) decodeSecurities(filename string, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var js jsecurity
		if err := json.Unmarshal(line, &js); err != nil {
			return fmt.Errorf("format error in %q on line %q: %w", filename, string(line), err)
		}
		if m.Has(js.Ticker) {
			return fmt.Errorf("format error in %q: ticker %q is already defined", filename, js.Ticker)
		}
		m.Add(NewSecurity(js.Ticker, ID(js.ID), js.Currency))
	}
	return scanner.Err()
}

// decodeBars parses a single year file of daily bars.
func (m *MarketData) decodeBars(filename string, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var jb jbar
		if err := json.Unmarshal(line, &jb); err != nil {
			return fmt.Errorf("format error in %q on line %q: %w", filename, string(line), err)
		}
		sec := m.Get(jb.Ticker)
		if sec == nil {
			return fmt.Errorf("format error in %q: unknown ticker %q", filename, jb.Ticker)
		}
		sec.SetBar(jb.On, jb.Close, jb.Volume)
	}
	return scanner.Err()
}

// DecodeMarketData reads a market data folder.
func DecodeMarketData(path string) (*MarketData, error) {
	m := NewMarketData()

	defs := filepath.Join(path, securitiesFile)
	f, err := os.Open(defs)
	if os.IsNotExist(err) {
		// a missing folder is an empty market, so that a fresh setup can
		// declare its first security.
		return m, nil
	}
	if err != nil {
		return nil, err
	}
	err = m.decodeSecurities(defs, f)
	f.Close()
	if err != nil {
		return nil, err
	}

	files, err := filepath.Glob(filepath.Join(path, barFilesGlob))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	for _, file := range files {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		err = m.decodeBars(file, f)
		f.Close()
		if err != nil {
			return nil, err
		}
	}
	return m, nil
}

// EncodeMarketData writes the whole market data collection into a folder,
// regenerating the securities file and the per-year bar files.
func EncodeMarketData(path string, m *MarketData) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return err
	}

	// Securities definitions, in alphabetical order for stable diffs.
	secs := make([]*Security, 0, m.Len())
	for s := range m.Securities() {
		secs = append(secs, s)
	}
	sort.Slice(secs, func(i, j int) bool { return secs[i].ticker < secs[j].ticker })

	var defs strings.Builder
	enc := json.NewEncoder(&defs)
	for _, s := range secs {
		js := jsecurity{Ticker: s.ticker, ID: string(s.id), Currency: s.currency}
		if err := enc.Encode(js); err != nil {
			return err
		}
	}
	if err := os.WriteFile(filepath.Join(path, securitiesFile), []byte(defs.String()), 0644); err != nil {
		return err
	}

	// Group bars by year, chronologically, tickers in alphabetical order
	// within a day.
	years := make(map[int][]jbar)
	for _, s := range secs {
		for on, volume := range s.volumes.Values() {
			close, _ := s.prices.Get(on)
			years[on.Year()] = append(years[on.Year()], jbar{On: on, Ticker: s.ticker, Close: close, Volume: volume})
		}
	}
	for year, bars := range years {
		sort.Slice(bars, func(i, j int) bool {
			if bars[i].On != bars[j].On {
				return bars[i].On.Before(bars[j].On)
			}
			return bars[i].Ticker < bars[j].Ticker
		})
		var b strings.Builder
		enc := json.NewEncoder(&b)
		for _, bar := range bars {
			if err := enc.Encode(bar); err != nil {
				return err
			}
		}
		name := filepath.Join(path, strconv.Itoa(year)+".jsonl")
		if err := os.WriteFile(name, []byte(b.String()), 0644); err != nil {
			return err
		}
	}

	// Delete year files that no longer hold any bar.
	existing, err := filepath.Glob(filepath.Join(path, barFilesGlob))
	if err != nil {
		return err
	}
	for _, file := range existing {
		year, err := strconv.Atoi(strings.TrimSuffix(filepath.Base(file), ".jsonl"))
		if err != nil {
			continue
		}
		if _, ok := years[year]; !ok {
			if err := os.Remove(file); err != nil {
				return err
			}
		}
	}
	return nil
}
