package replay

import (
	"io"
	"strings"
	"testing"

	"github.com/ambicuity/High-Performance-Limit-Order-Book-LOB-Simulator/orderbook"
)

func TestCSVSourceParsesRecords(t *testing.T) {
	input := `# comment line, skipped
100,ADD,1,BUY,100.00,10,LIMIT

200,CANCEL,1,BUY,0,0,LIMIT
300,ADD,2,SELL,99.50,5,IOC
`
	src := NewCSVSource(strings.NewReader(input), nil)
	defer src.Close()

	want := []Record{
		{TimestampNs: 100, Action: Add, OrderID: 1, Side: orderbook.Buy, Price: 100.00, Qty: 10, Type: orderbook.Limit},
		{TimestampNs: 200, Action: CancelAction, OrderID: 1, Side: orderbook.Buy, Price: 0, Qty: 0, Type: orderbook.Limit},
		{TimestampNs: 300, Action: Add, OrderID: 2, Side: orderbook.Sell, Price: 99.50, Qty: 5, Type: orderbook.IOC},
	}

	for i, w := range want {
		got, err := src.Next()
		if err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
		if got != w {
			t.Errorf("record %d = %+v, want %+v", i, got, w)
		}
	}

	if _, err := src.Next(); err != io.EOF {
		t.Errorf("final Next() error = %v, want io.EOF", err)
	}
}

func TestCSVSourceRejectsMalformedLine(t *testing.T) {
	src := NewCSVSource(strings.NewReader("not,enough,fields\n"), nil)
	defer src.Close()

	if _, err := src.Next(); err == nil {
		t.Error("expected an error for a malformed line")
	}
}
