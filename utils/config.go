// Copyright 2024, the pvtools contributors.

package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {

	// The name of the fasta file containing the chromosome
	// (target) sequence.
	ChromFileName string

	// The name of the fasta file containing the gene (query)
	// sequence.
	GeneFileName string

	// The file path where the final chain is written.  If blank,
	// the name is derived from the two input file names.
	OutFileName string

	// The approximate size, in bases, of each gene chunk passed
	// to blat.
	ChunkSize int

	// The blat tile size.
	TileSize int

	// The minimum blat alignment score.
	MinScore int

	// The minimum blat sequence identity, in percent.
	MinIdentity int

	// If true, blat runs with -fastMap.  Only appropriate when
	// the two sequences are closely related.
	FastMap bool

	// The axtChain gap cost schedule, either "medium" or "loose".
	LinearGap string

	// Use this location to place temporary files.  If blank or
	// missing, a directory of the form pvtools_tmp/######## is
	// generated in the local directory.
	TempDir string

	// The directory where log files are written.  By default the
	// logs are placed into pvtools_logs/######, where the number
	// matches the suffix of the temporary directory.
	LogDir string

	// A directory holding the UCSC binaries, prepended to PATH.
	// If blank, the binaries must already be on PATH.
	BinDir string

	// If true, temporary files are not removed upon program
	// completion.
	NoCleanTemp bool
}

// ReadConfig reads configuration parameters from a JSON or TOML file,
// chosen by the file extension.
func ReadConfig(filename string) (*Config, error) {

	config := new(Config)

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		if _, err := toml.DecodeFile(filename, config); err != nil {
			return nil, err
		}
	case ".json":
		fid, err := os.Open(filename)
		if err != nil {
			return nil, err
		}
		defer fid.Close()
		dec := json.NewDecoder(fid)
		if err := dec.Decode(config); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("utils: config file %s is neither .json nor .toml", filename)
	}

	return config, nil
}

// WriteConfig saves the configuration in JSON format, normally into
// the log directory of a run.
func WriteConfig(filename string, config *Config) error {

	fid, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer fid.Close()

	enc := json.NewEncoder(fid)
	return enc.Encode(config)
}

// DefaultConfig returns a configuration holding the standard
// same-species liftover settings.
func DefaultConfig() *Config {
	return &Config{
		ChunkSize:   5000,
		TileSize:    12,
		MinScore:    100,
		MinIdentity: 98,
		LinearGap:   "medium",
	}
}
