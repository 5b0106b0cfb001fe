package dataset

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Write renders d in the format Read accepts: a header line then one row
// per case, fields joined by delim (tab when zero). Values use the shortest
// representation that round-trips.
func Write(w io.Writer, d *Dataset, delim rune) error {
	if delim == 0 {
		delim = '\t'
	}
	sep := string(delim)
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(strings.Join(d.Names(), sep) + "\n"); err != nil {
		return err
	}
	m := d.Data()
	for i := 0; i < m.Rows(); i++ {
		row, err := m.Row(i)
		if err != nil {
			return err
		}
		for j, v := range row {
			if j > 0 {
				bw.WriteString(sep)
			}
			bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
