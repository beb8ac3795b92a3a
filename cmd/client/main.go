package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/medscan/medscan/pkg/client"
)

func main() {
	urlFlag := flag.String("url", "http://localhost:8080", "server url")
	pdfFlag := flag.String("pdf", "", "link to the report pdf")

	flag.Parse()

	if *pdfFlag == "" {
		flag.Usage()
		os.Exit(2)
	}

	ctx := context.Background()

	c, err := client.New(*urlFlag)

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	result, err := c.Analyze(ctx, *pdfFlag)

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	for _, warning := range result.Warnings {
		fmt.Fprintln(os.Stderr, warning)
	}

	fmt.Println(result.Analysis)
}
