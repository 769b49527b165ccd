package replay

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/orderbook"
)

// CSVSource reads the line-oriented replay format:
//
//	timestamp_ns,action,order_id,side,price,qty,type
//
// one record per line, fields comma-separated. Blank lines and lines
// starting with '#' are skipped.
type CSVSource struct {
	scanner *bufio.Scanner
	closer  io.Closer
}

// NewCSVSource wraps r (and, if non-nil, closes closer on Close;
// callers opening a file pass the *os.File as both).
func NewCSVSource(r io.Reader, closer io.Closer) *CSVSource {
	return &CSVSource{scanner: bufio.NewScanner(r), closer: closer}
}

// Next parses the next data line, returning io.EOF when the
// underlying reader is exhausted.
func (s *CSVSource) Next() (Record, error) {
	for s.scanner.Scan() {
		line := strings.TrimSpace(s.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return parseCSVLine(line)
	}
	if err := s.scanner.Err(); err != nil {
		return Record{}, fmt.Errorf("replay: csv scan: %w", err)
	}
	return Record{}, io.EOF
}

// Close releases the underlying reader, if one was given.
func (s *CSVSource) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func parseCSVLine(line string) (Record, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 7 {
		return Record{}, fmt.Errorf("replay: want 7 fields, got %d: %q", len(fields), line)
	}

	ts, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("replay: timestamp: %w", err)
	}
	action, err := parseAction(strings.TrimSpace(fields[1]))
	if err != nil {
		return Record{}, err
	}
	id, err := strconv.ParseUint(strings.TrimSpace(fields[2]), 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("replay: order_id: %w", err)
	}
	side, err := parseSide(strings.TrimSpace(fields[3]))
	if err != nil {
		return Record{}, err
	}
	px, err := strconv.ParseFloat(strings.TrimSpace(fields[4]), 64)
	if err != nil {
		return Record{}, fmt.Errorf("replay: price: %w", err)
	}
	qty, err := strconv.ParseInt(strings.TrimSpace(fields[5]), 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("replay: qty: %w", err)
	}
	typ, err := parseType(strings.TrimSpace(fields[6]))
	if err != nil {
		return Record{}, err
	}

	return Record{
		TimestampNs: ts,
		Action:      action,
		OrderID:     id,
		Side:        side,
		Price:       px,
		Qty:         qty,
		Type:        typ,
	}, nil
}

func parseAction(s string) (Action, error) {
	switch s {
	case "ADD":
		return Add, nil
	case "CANCEL":
		return CancelAction, nil
	case "REPLACE":
		return ReplaceAction, nil
	default:
		return 0, fmt.Errorf("replay: unknown action %q", s)
	}
}

func parseSide(s string) (orderbook.Side, error) {
	switch s {
	case "BUY":
		return orderbook.Buy, nil
	case "SELL":
		return orderbook.Sell, nil
	default:
		return 0, fmt.Errorf("replay: unknown side %q", s)
	}
}

func parseType(s string) (orderbook.Type, error) {
	switch s {
	case "LIMIT":
		return orderbook.Limit, nil
	case "MARKET":
		return orderbook.Market, nil
	case "IOC":
		return orderbook.IOC, nil
	case "FOK":
		return orderbook.FOK, nil
	default:
		return 0, fmt.Errorf("replay: unknown type %q", s)
	}
}
