// Command genicon writes the application icon to assets/images/app_icon.png.
//
// It takes no arguments. The assets/images directory must already exist.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/taskapp/appicon"
)

func main() {
	if err := run(os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(stdout io.Writer) error {
	d := appicon.DefaultDesign()
	if err := d.Save(appicon.OutputPath); err != nil {
		return err
	}
	_, err := fmt.Fprintf(stdout, "Icon saved to %s (%dx%d)\n", appicon.OutputPath, d.Size, d.Size)
	return err
}
