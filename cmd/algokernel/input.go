package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/cwbudde/algo-kernel/internal/worker"
)

// parseArgs parses each argument as a float64. NaN, Inf and -Inf are accepted.
func parseArgs(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		x, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = x
	}
	return out, nil
}

// parseArray decodes a JSON array in the worker.Values encoding.
func parseArray(name string, b []byte) ([]float64, error) {
	var v worker.Values
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if v == nil {
		v = worker.Values{}
	}
	return v, nil
}

// readArray decodes a JSON array from path, or from stdin when path is "-".
func readArray(path string, stdin io.Reader) ([]float64, error) {
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return parseArray(path, b)
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
