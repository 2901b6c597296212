package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kjk/common/atomicfile"
	"github.com/tidwall/pretty"

	"taskcli/internal/service"
)

// fileIndent is the indentation used for the backing file.
const fileIndent = "    "

var prettyOptions = &pretty.Options{
	Indent: fileIndent,
	// keep every element on its own line, even short arrays
	Width: 0,
}

// emptyDocument is what a fresh or self-healed store contains.
var emptyDocument = []byte("[]\n")

// encodeTasks renders tasks as the pretty-printed file body.
// A nil slice encodes as an empty array, never as null.
func encodeTasks(tasks []service.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []service.Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	// PrettyOptions appends the trailing newline
	return pretty.PrettyOptions(data, prettyOptions), nil
}

func decodeTasks(data []byte) ([]service.Task, error) {
	var tasks []service.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		// a literal "null" document
		return nil, fmt.Errorf("expected an array of tasks, got null")
	}
	return tasks, nil
}

// writeFileAtomic replaces path with data, so readers see either the old
// file or the new one, never a partial write.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	f, err := atomicfile.New(path)
	if err != nil {
		return err
	}
	defer f.RemoveIfNotClosed()

	if _, err := f.Write(data); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// the temp file is created 0600
	return os.Chmod(path, perm)
}
