// Copyright 2024, the pvtools contributors.

// pvfetch downloads the prebuilt UCSC binaries that the pvchain
// pipeline invokes, placing them in a local bin directory and marking
// them executable.  Binaries that are already present are skipped
// unless --force is given.
//
// pvfetch --bin=bin --platform=linux.x86_64
//
// Point pvchain at the directory with --BinDir.

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path"
	"time"

	"github.com/sadams2013/pvtools/utils"
)

const downloadBase = "https://hgdownload.soe.ucsc.edu/admin/exe"

var (
	binDir   = flag.String("bin", "bin", "directory where the binaries are placed")
	platform = flag.String("platform", "linux.x86_64", "UCSC platform directory (linux.x86_64, macOSX.x86_64, macOSX.arm64)")
	force    = flag.Bool("force", false, "download even if the binary is already present")
	timeout  = flag.Duration("timeout", 5*time.Minute, "per-download timeout")
)

func fetch(client *http.Client, name string) error {

	dest := path.Join(*binDir, name)
	if !*force {
		if _, err := os.Stat(dest); err == nil {
			io.WriteString(os.Stderr, fmt.Sprintf("%s already present, skipping\n", name))
			return nil
		}
	}

	url := fmt.Sprintf("%s/%s/%s", downloadBase, *platform, name)
	io.WriteString(os.Stderr, fmt.Sprintf("Downloading %s...\n", url))

	resp, err := client.Get(url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: %s", url, resp.Status)
	}

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0755)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		os.Remove(dest)
		return err
	}

	return out.Close()
}

func main() {

	flag.Parse()

	if err := os.MkdirAll(*binDir, 0755); err != nil {
		log.Fatal(err)
	}

	client := &http.Client{
		Timeout: *timeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	for _, name := range utils.PipelineTools {
		if err := fetch(client, name); err != nil {
			log.Fatalf("failed to fetch %s: %v", name, err)
		}
	}

	io.WriteString(os.Stderr, fmt.Sprintf("All tools present in %s\n", *binDir))
}
