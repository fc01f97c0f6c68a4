package projectpdf_test

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	projectpdf "github.com/porticus-lab/go-project-pdf"
)

func Example() {
	g := projectpdf.NewGenerator(projectpdf.WithNoSandbox())

	rep, err := g.Generate(context.Background(), "./myproject", "myproject.pdf")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Documented %d files in %d pages (%d KB)\n", rep.Files, rep.Pages, rep.Bytes/1024)
}

func Example_a4() {
	g := projectpdf.NewGenerator(
		projectpdf.WithTimeout(10*time.Minute),
		projectpdf.WithAutoDownload(),
		projectpdf.WithPageConfig(projectpdf.PageConfig{
			Size:   projectpdf.A4,
			Margin: projectpdf.UniformMargin(2),
		}),
	)

	if _, err := g.Generate(context.Background(), ".", "/tmp/project.pdf"); err != nil {
		log.Fatal(err)
	}
	fmt.Println("PDF saved to /tmp/project.pdf")
}

func ExampleGenerator_RenderHTML() {
	g := projectpdf.NewGenerator()

	html, rep, err := g.RenderHTML(".")
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile("project.html", []byte(html), 0o644); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%d files across %d directories\n", rep.Files, rep.Directories)
}
