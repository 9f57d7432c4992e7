// Copyright 2024, the pvtools contributors.

// pvchain builds a liftover chain between two assemblies of the same
// locus by sequencing the UCSC genome tools.  It is the entry point
// of the pvtools pipeline: given a chromosome (target) fasta and a
// gene (query) fasta it converts both to 2bit, writes their size
// indexes, fragments the gene into chunks with a coordinate lift
// file, aligns each chunk against the chromosome with blat, lifts
// the chunk alignments back to gene coordinates, chains and merges
// the alignments, and finally nets the merged chain and extracts the
// netted subset.
//
// A typical invocation is:
//
// pvchain chr22.fa NG_008376.fa
//
// which writes chr22-NG_008376.chain in the working directory.  The
// alignment parameters can be adjusted with flags or with a JSON or
// TOML configuration file:
//
// pvchain --ConfigFileName=config.toml chr22.fa NG_008376.fa
//
// Intermediate files are staged in pvtools_tmp/######, where ###### is
// a generated id, and removed on completion unless --NoCleanTemp is
// given.  A log of every external command is written under
// pvtools_logs/###### along with the effective configuration.
//
// The UCSC binaries (faToTwoBit, faSplit, blat, liftUp, axtChain,
// chainMergeSort, chainSplit, chainNet, netChainSubset) must be on
// PATH or in the directory named by --BinDir; pvfetch downloads
// prebuilt copies.

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/biogo/external"
	"github.com/google/uuid"
	"github.com/sadams2013/pvtools/ucsc"
	"github.com/sadams2013/pvtools/utils"
	"github.com/scipipe/scipipe"
)

var (
	config *utils.Config

	// Per-run staging directory holding every intermediate file.
	tmpDir string

	logger *log.Logger
)

func handleArgs() {

	ConfigFileName := flag.String("ConfigFileName", "", "JSON or TOML file containing configuration parameters")
	OutFileName := flag.String("OutFileName", "", "File path for the final chain")
	ChunkSize := flag.Int("ChunkSize", 0, "Approximate chunk size for faSplit, in bases")
	TileSize := flag.Int("TileSize", 0, "blat tile size")
	MinScore := flag.Int("MinScore", 0, "Minimum blat alignment score")
	MinIdentity := flag.Int("MinIdentity", 0, "Minimum blat sequence identity (percent)")
	FastMap := flag.Bool("FastMap", false, "Run blat with -fastMap")
	LinearGap := flag.String("LinearGap", "", "axtChain gap costs, medium or loose")
	TempDir := flag.String("TempDir", "", "Workspace for temporary files")
	LogDir := flag.String("LogDir", "", "Directory where log files are written")
	BinDir := flag.String("BinDir", "", "Directory holding the UCSC binaries, prepended to PATH")
	NoCleanTemp := flag.Bool("NoCleanTemp", false, "Do not delete temporary files from TempDir")

	flag.Parse()

	if *ConfigFileName != "" {
		var err error
		config, err = utils.ReadConfig(*ConfigFileName)
		if err != nil {
			panic(err)
		}
	} else {
		config = new(utils.Config)
	}

	if flag.NArg() > 0 {
		config.ChromFileName = flag.Arg(0)
	}
	if flag.NArg() > 1 {
		config.GeneFileName = flag.Arg(1)
	}

	if *OutFileName != "" {
		config.OutFileName = *OutFileName
	}
	if *ChunkSize != 0 {
		config.ChunkSize = *ChunkSize
	}
	if *TileSize != 0 {
		config.TileSize = *TileSize
	}
	if *MinScore != 0 {
		config.MinScore = *MinScore
	}
	if *MinIdentity != 0 {
		config.MinIdentity = *MinIdentity
	}
	if *FastMap {
		config.FastMap = true
	}
	if *LinearGap != "" {
		config.LinearGap = *LinearGap
	}
	if *TempDir != "" {
		config.TempDir = *TempDir
	}
	if *LogDir != "" {
		config.LogDir = *LogDir
	}
	if *BinDir != "" {
		config.BinDir = *BinDir
	}
	if *NoCleanTemp {
		config.NoCleanTemp = true
	}
}

func checkArgs() {

	if config.ChromFileName == "" || config.GeneFileName == "" {
		os.Stderr.WriteString("Usage: pvchain [flags] chromosome.fa gene.fa\n")
		os.Stderr.WriteString("Run 'pvchain --help' for more information.\n\n")
		os.Exit(1)
	}

	for _, f := range []string{config.ChromFileName, config.GeneFileName} {
		if _, err := os.Stat(f); err != nil {
			os.Stderr.WriteString(fmt.Sprintf("Cannot read %s: %v\n\n", f, err))
			os.Exit(1)
		}
	}

	def := utils.DefaultConfig()
	if config.ChunkSize == 0 {
		config.ChunkSize = def.ChunkSize
	}
	if config.TileSize == 0 {
		config.TileSize = def.TileSize
	}
	if config.MinScore == 0 {
		config.MinScore = def.MinScore
	}
	if config.MinIdentity == 0 {
		config.MinIdentity = def.MinIdentity
	}
	if config.LinearGap == "" {
		config.LinearGap = def.LinearGap
	}
	if config.OutFileName == "" {
		config.OutFileName = utils.ChainName(config.ChromFileName, config.GeneFileName)
	}
}

func setupEnvs() {

	if config.BinDir != "" {
		if err := utils.PrependPath(config.BinDir); err != nil {
			panic(err)
		}
	}
	if err := utils.CheckTools(utils.PipelineTools); err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// makeTemp creates the staging and log directories for this run,
// both named by a fresh unique id.
func makeTemp() {

	xuid, err := uuid.NewUUID()
	if err != nil {
		panic(err)
	}
	uid := xuid.String()

	if config.TempDir == "" {
		tmpDir = path.Join("pvtools_tmp", uid)
	} else {
		tmpDir = path.Join(config.TempDir, uid)
	}
	for _, d := range []string{"split", "psl", "lifted", "chain", "chainsplit"} {
		if err := os.MkdirAll(path.Join(tmpDir, d), 0755); err != nil {
			panic(err)
		}
	}

	if config.LogDir == "" {
		config.LogDir = "pvtools_logs"
	}
	config.LogDir = path.Join(config.LogDir, uid)
	if err := os.MkdirAll(config.LogDir, 0755); err != nil {
		panic(err)
	}
}

func setupLog() {

	fid, err := os.Create(path.Join(config.LogDir, "pvchain.log"))
	if err != nil {
		panic(err)
	}
	logger = log.New(fid, "", log.Ltime)
}

func saveConfig() {

	if err := utils.WriteConfig(path.Join(config.LogDir, "config.json"), config); err != nil {
		panic(err)
	}
}

// run builds a command and executes it to completion with stderr
// passed through, logging the full argument list.
func run(cb external.CommandBuilder) {

	cmd, err := cb.BuildCommand()
	if err != nil {
		panic(err)
	}
	cmd.Env = os.Environ()
	cmd.Stderr = os.Stderr
	logger.Printf("running: %s", strings.Join(cmd.Args, " "))
	if err := cmd.Run(); err != nil {
		panic(err)
	}
}

func twoBit(name string) string { return path.Join(tmpDir, name+".2bit") }
func sizes(name string) string  { return path.Join(tmpDir, name+".sizes") }

func allChain() string { return path.Join(tmpDir, "all.chain") }
func allNet() string   { return path.Join(tmpDir, "all.net") }

func makeTwoBits() {

	io.WriteString(os.Stderr, "Indexing sequences...\n")

	run(ucsc.FaToTwoBit{InFile: config.ChromFileName, OutFile: twoBit("chrom")})
	run(ucsc.FaToTwoBit{InFile: config.GeneFileName, OutFile: twoBit("gene")})
}

func writeSizes() {

	if err := utils.WriteSizesFile(config.ChromFileName, sizes("chrom")); err != nil {
		panic(err)
	}
	if err := utils.WriteSizesFile(config.GeneFileName, sizes("gene")); err != nil {
		panic(err)
	}
}

// splitGene fragments the gene fasta into chunks, recording each
// chunk's offset in the lift file, and returns the chunk paths.
func splitGene() []string {

	io.WriteString(os.Stderr, "Splitting gene sequence...\n")

	run(ucsc.FaSplit{
		How:     "size",
		InFile:  config.GeneFileName,
		Count:   config.ChunkSize,
		OutRoot: path.Join(tmpDir, "split", "c"),
		Lift:    path.Join(tmpDir, "split", "split.lft"),
	})

	chunks, err := filepath.Glob(path.Join(tmpDir, "split", "c*.fa"))
	if err != nil {
		panic(err)
	}
	if len(chunks) == 0 {
		panic(fmt.Errorf("faSplit produced no chunks from %s", config.GeneFileName))
	}
	sort.Strings(chunks)

	return chunks
}

func alignChunks(chunks []string) {

	for i, chunk := range chunks {
		io.WriteString(os.Stderr, fmt.Sprintf("Aligning chunk %d of %d...\n", i+1, len(chunks)))
		run(ucsc.Blat{
			TileSize:    config.TileSize,
			MinScore:    config.MinScore,
			MinIdentity: config.MinIdentity,
			FastMap:     config.FastMap,
			NoHead:      true,
			Database:    twoBit("chrom"),
			Query:       chunk,
			OutFile:     path.Join(tmpDir, "psl", utils.Basename(chunk)+".psl"),
		})
	}
}

// liftChunks converts the chunk-relative query coordinates of each
// alignment back to coordinates in the full gene sequence.
func liftChunks(chunks []string) {

	io.WriteString(os.Stderr, "Lifting alignments...\n")

	for _, chunk := range chunks {
		b := utils.Basename(chunk)
		run(ucsc.LiftUp{
			PslQ:       true,
			NoHead:     true,
			DestFile:   path.Join(tmpDir, "lifted", b+".psl"),
			LiftFile:   path.Join(tmpDir, "split", "split.lft"),
			How:        "warn",
			SourceFile: path.Join(tmpDir, "psl", b+".psl"),
		})
	}
}

func chainChunks(chunks []string) {

	io.WriteString(os.Stderr, "Chaining alignments...\n")

	for _, chunk := range chunks {
		b := utils.Basename(chunk)
		run(ucsc.AxtChain{
			Psl:       true,
			LinearGap: config.LinearGap,
			InFile:    path.Join(tmpDir, "lifted", b+".psl"),
			Target:    twoBit("chrom"),
			Query:     twoBit("gene"),
			OutFile:   path.Join(tmpDir, "chain", b+".chain"),
		})
	}
}

// mergeChains sorts and merges the per-chunk chains into all.chain.
func mergeChains(chunks []string) {

	io.WriteString(os.Stderr, "Merging chains...\n")

	listFile := path.Join(tmpDir, "chain.lst")
	fid, err := os.Create(listFile)
	if err != nil {
		panic(err)
	}
	if err := writeChainList(fid, path.Join(tmpDir, "chain"), chunks); err != nil {
		panic(err)
	}
	if err := fid.Close(); err != nil {
		panic(err)
	}

	cmd, err := ucsc.ChainMergeSort{InputList: listFile}.BuildCommand()
	if err != nil {
		panic(err)
	}
	out, err := os.Create(allChain())
	if err != nil {
		panic(err)
	}
	defer out.Close()
	cmd.Env = os.Environ()
	cmd.Stdout = out
	cmd.Stderr = os.Stderr
	logger.Printf("running: %s > %s", strings.Join(cmd.Args, " "), allChain())
	if err := cmd.Run(); err != nil {
		panic(err)
	}
}

// writeChainList writes the per-chunk chain file paths one per line,
// the format chainMergeSort -inputList expects.  A short write drops
// chunks from the merge, so write errors are returned, not ignored.
func writeChainList(w io.Writer, chainDir string, chunks []string) error {

	for _, chunk := range chunks {
		if _, err := fmt.Fprintln(w, path.Join(chainDir, utils.Basename(chunk)+".chain")); err != nil {
			return err
		}
	}

	return nil
}

func splitChains() {

	run(ucsc.ChainSplit{
		OutDir: path.Join(tmpDir, "chainsplit"),
		InFile: allChain(),
	})
}

// netChains nets the merged chain and extracts the netted subset,
// which is the final liftover chain.
func netChains() {

	io.WriteString(os.Stderr, "Netting chains...\n")

	// Remove any stale results file so a failed run cannot leave
	// an old chain in place.
	if _, err := os.Stat(config.OutFileName); err == nil {
		if err := os.Remove(config.OutFileName); err != nil {
			panic(err)
		}
	} else if !os.IsNotExist(err) {
		panic(err)
	}

	netWorkflow(allChain(), sizes("chrom"), sizes("gene"), allNet(), config.OutFileName).Run()
}

// netWorkflow wires the chainNet and netChainSubset stages.  The
// subset process has no out-ports, so it drives the workflow.
func netWorkflow(chainFile, chromSizes, geneSizes, netFile, outFile string) *scipipe.Workflow {

	wf := scipipe.NewWorkflow("net", 4)

	cn := wf.NewProc("cn", fmt.Sprintf("chainNet %s %s %s {o:net} /dev/null",
		chainFile, chromSizes, geneSizes))
	cn.SetOut("net", netFile)

	su := wf.NewProc("su", fmt.Sprintf("netChainSubset {i:net} %s %s",
		chainFile, outFile))

	su.In("net").From(cn.Out("net"))

	return wf
}

func pipeline() {

	makeTwoBits()
	writeSizes()
	chunks := splitGene()
	alignChunks(chunks)
	liftChunks(chunks)
	chainChunks(chunks)
	mergeChains(chunks)
	splitChains()
	netChains()
}

func cleanTmp() {

	if config.NoCleanTemp {
		logger.Printf("Keeping temporary files in %s", tmpDir)
		return
	}
	logger.Printf("Removing temporary files from %s", tmpDir)
	if err := os.RemoveAll(tmpDir); err != nil {
		logger.Print("Can't remove temporary files:")
		logger.Print(err)
		logger.Printf("Continuing anyway...")
	}
}

func main() {

	handleArgs()
	checkArgs()
	setupEnvs()
	makeTemp()
	saveConfig()
	setupLog()

	defer cleanTmp()

	logger.Printf("Storing temporary files in %s", tmpDir)
	logger.Printf("Storing log files in %s", config.LogDir)

	pipeline()

	logger.Printf("Wrote %s", config.OutFileName)
	io.WriteString(os.Stderr, fmt.Sprintf("Wrote %s\n", config.OutFileName))
}
