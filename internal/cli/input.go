package cli

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"cpu-simulator/internal/requests"
)

type processDocument struct {
	Processes []requests.Process `json:"processes" yaml:"processes"`
}

// readProcesses loads processes from path ("-" is stdin). format is one of
// auto, json, yaml or csv; auto picks by file extension and falls back to json.
func readProcesses(path, format string, stdin io.Reader) ([]requests.Process, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read process file: %w", err)
	}

	if format == "" || format == "auto" {
		format = formatFromPath(path)
	}
	processes, err := decodeProcesses(data, format)
	if err != nil {
		return nil, fmt.Errorf("parse %s process file %s: %w", format, path, err)
	}
	return processes, nil
}

func formatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".csv":
		return "csv"
	default:
		return "json"
	}
}

// decodeProcesses accepts either a bare list of processes or a document with
// a processes key.
func decodeProcesses(data []byte, format string) ([]requests.Process, error) {
	switch strings.ToLower(format) {
	case "json":
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			var processes []requests.Process
			err := json.Unmarshal(trimmed, &processes)
			return processes, err
		}
		var doc processDocument
		err := json.Unmarshal(trimmed, &doc)
		return doc.Processes, err
	case "yaml":
		var processes []requests.Process
		if err := yaml.Unmarshal(data, &processes); err == nil {
			return processes, nil
		}
		var doc processDocument
		err := yaml.Unmarshal(data, &doc)
		return doc.Processes, err
	case "csv":
		return parseCSV(bytes.NewReader(data))
	}
	return nil, fmt.Errorf("unsupported input format %q", format)
}

// parseCSV reads rows of id,arrival,burst[,priority]. A leading header row
// starting with "id" is skipped, as are lines starting with '#'.
func parseCSV(r io.Reader) ([]requests.Process, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	processes := make([]requests.Process, 0)
	for row := 1; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if row == 1 && strings.EqualFold(strings.TrimSpace(record[0]), "id") {
			continue
		}
		if len(record) < 3 || len(record) > 4 {
			return nil, fmt.Errorf("row %d: expected 3 or 4 columns, got %d", row, len(record))
		}

		process := requests.Process{ID: strings.TrimSpace(record[0])}
		if process.ArrivalTime, err = strconv.ParseFloat(strings.TrimSpace(record[1]), 64); err != nil {
			return nil, fmt.Errorf("row %d: arrival time: %w", row, err)
		}
		if process.BurstTime, err = strconv.ParseFloat(strings.TrimSpace(record[2]), 64); err != nil {
			return nil, fmt.Errorf("row %d: burst time: %w", row, err)
		}
		if len(record) == 4 && strings.TrimSpace(record[3]) != "" {
			priority, err := strconv.Atoi(strings.TrimSpace(record[3]))
			if err != nil {
				return nil, fmt.Errorf("row %d: priority: %w", row, err)
			}
			process.Priority = &priority
		}
		processes = append(processes, process)
	}
	return processes, nil
}
