package topdf_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/starsunsurpass/topdf"
)

// Example demonstrates converting a single file.
func Example() {
	dir, err := os.MkdirTemp("", "topdf")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	input := filepath.Join(dir, "hello.md")
	if err := os.WriteFile(input, []byte("# Hello\n\nFirst document.\n"), 0o644); err != nil {
		fmt.Println("error:", err)
		return
	}

	conv := topdf.NewConverter(topdf.EmbeddedFont())
	output := topdf.OutputPath(input, dir)
	if err := conv.Convert(input, output); err != nil {
		fmt.Println("error:", err)
		return
	}

	if _, err := os.Stat(output); err == nil {
		fmt.Println("PDF written")
	}
	// Output: PDF written
}

// Example_batch demonstrates converting several files at once.
func Example_batch() {
	dir, err := os.MkdirTemp("", "topdf")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer os.RemoveAll(dir)

	doc := filepath.Join(dir, "doc.md")
	data := filepath.Join(dir, "data.json")
	if err := os.WriteFile(doc, []byte("# Doc\n"), 0o644); err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := os.WriteFile(data, []byte(`{"a": 1}`), 0o644); err != nil {
		fmt.Println("error:", err)
		return
	}

	orc := topdf.NewOrchestrator(topdf.NewConverter(topdf.EmbeddedFont()))
	orc.Add(doc, data)
	orc.SetOutputDir(dir)
	if orc.ConvertAll() {
		orc.Run()
	}

	completed, total := orc.Progress()
	fmt.Printf("%d/%d converted\n", completed, total)
	// Output: 2/2 converted
}

// ExampleDetectKind shows extension-based classification, including the
// hidden-file rule.
func ExampleDetectKind() {
	fmt.Println(topdf.DetectKind("notes/report.md"))
	fmt.Println(topdf.DetectKind("photo.JPG"))
	fmt.Println(topdf.DetectKind(".json"))
	// Output:
	// markdown
	// image
	// unknown
}

func ExampleOutputPath() {
	fmt.Println(topdf.OutputPath("docs/guide.md", ""))
	fmt.Println(topdf.OutputPath("docs/guide.md", "out"))
	// Output:
	// docs/guide.pdf
	// out/guide.pdf
}
