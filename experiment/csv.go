package experiment

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

var csvHeader = []string{"Experiment Index", "Algorithm", "Data Type", "Size", "Structure", "Trial", "Time(ms)"}

// WriteCSV writes the header and one row per result. Fields are joined with
// commas and never quoted; none of the values can contain a comma.
func WriteCSV(w io.Writer, results []TrialResult) error {
	bw := bufio.NewWriterSize(w, 64*1024)

	bw.WriteString(strings.Join(csvHeader, ","))
	bw.WriteByte('\n')

	row := make([]string, len(csvHeader))
	for _, r := range results {
		row[0] = strconv.Itoa(r.ExperimentIndex)
		row[1] = r.Algorithm
		row[2] = r.DataType
		row[3] = strconv.Itoa(r.Size)
		row[4] = r.Structure
		row[5] = strconv.Itoa(r.Trial)
		row[6] = strconv.FormatFloat(r.Millis(), 'f', 2, 64)
		bw.WriteString(strings.Join(row, ","))
		bw.WriteByte('\n')
	}
	return errors.Wrap(bw.Flush(), "write csv")
}

// SaveCSV writes results to the file at path, replacing it.
func SaveCSV(path string, results []TrialResult) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create csv")
	}
	if err := WriteCSV(file, results); err != nil {
		file.Close()
		return err
	}
	return errors.Wrap(file.Close(), "close csv")
}
