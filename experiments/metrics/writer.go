package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// Writer stores experiment records as CSV files under a timestamped result
// directory.
type Writer struct {
	baseDir string
}

// NewWriter creates <dir>/<name>/<timestamp>/ and returns a writer rooted
// there.
func NewWriter(dir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(dir, name, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, errors.Wrap(err, "failed to create result directory")
	}

	return &Writer{baseDir: baseDir}, nil
}

// Dir returns the result directory this writer stores files under.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	return w.writeCSV("agent_configs.csv",
		[]string{"id", "workers", "episodes", "duration"},
		len(configs), func(i int) []string {
			c := configs[i]
			return []string{
				strconv.Itoa(c.ID),
				strconv.Itoa(c.Workers),
				strconv.Itoa(c.Episodes),
				time.Duration(c.Duration).String(),
			}
		})
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	return w.writeCSV("game_records.csv",
		[]string{"id", "agent1", "agent2", "winner", "moves", "start_time", "duration"},
		len(records), func(i int) []string {
			r := records[i]
			return []string{
				strconv.Itoa(r.ID),
				strconv.Itoa(r.Agent1),
				strconv.Itoa(r.Agent2),
				strconv.Itoa(r.Winner),
				strconv.Itoa(r.Moves),
				r.StartTime.Format(time.RFC3339),
				r.Duration.String(),
			}
		})
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	return w.writeCSV("move_records.csv",
		[]string{"game", "step", "player", "workers", "episodes", "duration"},
		len(records), func(i int) []string {
			r := records[i]
			return []string{
				strconv.Itoa(r.Game),
				strconv.Itoa(r.Step),
				strconv.Itoa(r.Player),
				strconv.Itoa(r.Workers),
				strconv.FormatInt(r.Episodes, 10),
				r.Duration.String(),
			}
		})
}

func (w *Writer) writeCSV(filename string, header []string, rows int, row func(i int) []string) error {
	path := filepath.Join(w.baseDir, filename)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", filename)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return errors.Wrapf(err, "failed to write %s header", filename)
	}
	for i := 0; i < rows; i++ {
		if err := writer.Write(row(i)); err != nil {
			return errors.Wrapf(err, "failed to write %s row %d", filename, i)
		}
	}
	return nil
}
