package topdf

import (
	"log/slog"
	"time"
)

// Status is the lifecycle state of a file entry.
type Status int

const (
	StatusPending Status = iota
	StatusConverting
	StatusSuccess
	StatusError
)

var statusNames = map[Status]string{
	StatusPending:    "pending",
	StatusConverting: "converting",
	StatusSuccess:    "success",
	StatusError:      "error",
}

// String returns the lowercase display name of the status.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// FileEntry is one input file and its conversion outcome. Err is set only
// when Status is StatusError.
type FileEntry struct {
	Path   string
	Status Status
	Err    error
}

// Completion reports the outcome of one conversion task, keyed by the
// entry index it was spawned for. Tasks finish in arbitrary order.
type Completion struct {
	Index    int
	Err      error
	Duration time.Duration
}

// FileConverter converts one input file into a PDF at the output path.
type FileConverter interface {
	Convert(inputPath, outputPath string) error
}

// Compile-time interface implementation check.
var _ FileConverter = (*Converter)(nil)

// Orchestrator owns the file list and batch progress. All methods must be
// called from a single goroutine, the event loop; conversion tasks run on
// their own goroutines and communicate back only through the completion
// channel. There is no bounded pool: a batch of N files spawns N tasks,
// and a started batch cannot be cancelled.
type Orchestrator struct {
	converter FileConverter
	outputDir string

	files       []FileEntry
	total       int
	completed   int
	converting  bool
	completions chan Completion
}

// NewOrchestrator builds an Orchestrator around the shared converter.
func NewOrchestrator(converter FileConverter) *Orchestrator {
	if converter == nil {
		panic("nil FileConverter in NewOrchestrator")
	}
	return &Orchestrator{converter: converter}
}

// Add appends a Pending entry per path, skipping paths already in the
// list. It returns the number of entries actually added.
func (o *Orchestrator) Add(paths ...string) int {
	added := 0
	for _, path := range paths {
		if o.indexOf(path) >= 0 {
			continue
		}
		o.files = append(o.files, FileEntry{Path: path, Status: StatusPending})
		added++
	}
	return added
}

func (o *Orchestrator) indexOf(path string) int {
	for i, entry := range o.files {
		if entry.Path == path {
			return i
		}
	}
	return -1
}

// Remove drops the entry at index. It reports false while a batch is
// running or when the index is out of range.
func (o *Orchestrator) Remove(index int) bool {
	if o.converting || index < 0 || index >= len(o.files) {
		return false
	}
	o.files = append(o.files[:index], o.files[index+1:]...)
	return true
}

// SetOutputDir stores the directory PDFs are written to. An empty value
// places each PDF next to its input.
func (o *Orchestrator) SetOutputDir(dir string) { o.outputDir = dir }

// OutputDir returns the stored output directory.
func (o *Orchestrator) OutputDir() string { return o.outputDir }

// Files returns a snapshot of the entry list.
func (o *Orchestrator) Files() []FileEntry {
	return append([]FileEntry(nil), o.files...)
}

// Progress returns the completed and total counters of the current or
// most recent batch.
func (o *Orchestrator) Progress() (completed, total int) {
	return o.completed, o.total
}

// IsConverting reports whether a batch is in flight.
func (o *Orchestrator) IsConverting() bool { return o.converting }

// ConvertAll starts a batch over every entry not already in
// StatusSuccess, so errored entries are retried. It reports false without
// side effects when a batch is already running or nothing is eligible.
// One goroutine is spawned per selected entry; results arrive on
// Completions in whatever order the tasks finish.
func (o *Orchestrator) ConvertAll() bool {
	if o.converting {
		return false
	}
	var selected []int
	for i, entry := range o.files {
		if entry.Status != StatusSuccess {
			selected = append(selected, i)
		}
	}
	if len(selected) == 0 {
		return false
	}

	o.converting = true
	o.total = len(selected)
	o.completed = 0
	// Sized so every task can post its result without blocking.
	o.completions = make(chan Completion, len(selected))

	slog.Info("starting batch", "files", len(selected), "outputDir", o.outputDir)
	for _, index := range selected {
		o.files[index].Status = StatusConverting
		o.files[index].Err = nil
		input := o.files[index].Path
		go o.runTask(index, input, OutputPath(input, o.outputDir))
	}
	return true
}

// runTask executes one conversion and posts its completion. A panic in
// the conversion is caught here so a broken file never takes down the
// batch; the entry surfaces it as ErrTaskFailure.
func (o *Orchestrator) runTask(index int, input, output string) {
	start := time.Now()
	err := ErrTaskFailure
	defer func() {
		if r := recover(); r != nil {
			slog.Error("conversion task panicked", "input", input, "panic", r)
		}
		o.completions <- Completion{Index: index, Err: err, Duration: time.Since(start)}
	}()
	err = o.converter.Convert(input, output)
}

// Completions exposes the current batch's result channel for event loops
// that multiplex it with other sources. Each batch delivers exactly as
// many events as ConvertAll selected entries.
func (o *Orchestrator) Completions() <-chan Completion {
	return o.completions
}

// Apply folds one completion into the state: the entry moves to
// StatusSuccess or StatusError, the completed counter advances, and the
// batch ends once every selected entry has reported.
func (o *Orchestrator) Apply(done Completion) {
	if done.Index < 0 || done.Index >= len(o.files) {
		return
	}
	o.completed++
	entry := &o.files[done.Index]
	if done.Err != nil {
		entry.Status = StatusError
		entry.Err = done.Err
		slog.Error("conversion failed", "input", entry.Path, "error", done.Err)
	} else {
		entry.Status = StatusSuccess
		entry.Err = nil
	}
	if o.completed >= o.total {
		o.converting = false
		slog.Info("batch complete", "completed", o.completed, "total", o.total)
	}
}

// Run pumps completions until the current batch finishes. It returns
// immediately when no batch is running.
func (o *Orchestrator) Run() {
	for o.converting {
		o.Apply(<-o.completions)
	}
}
