// Copyright 2024, the pvtools contributors.

package main

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/scipipe/scipipe"
)

// netWorkflow must build a fully connected workflow against the
// pinned scipipe API, without re-registering the processes that
// NewProc already added.
func TestNetWorkflowWiring(t *testing.T) {

	// Workflow construction writes a scipipe audit log under the
	// working directory.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer os.Chdir(wd)

	wf := netWorkflow("all.chain", "chrom.sizes", "gene.sizes", "all.net", "out.chain")

	cn := wf.Proc("cn")
	su := wf.Proc("su")

	for _, p := range []scipipe.WorkflowProcess{cn, su} {
		if !p.Ready() {
			t.Errorf("process %s is not fully connected", p.Name())
		}
	}

	inp, ok := su.InPorts()["net"]
	if !ok {
		t.Fatal("subset process has no net in-port")
	}
	if n := len(inp.RemotePorts); n != 1 {
		t.Fatalf("net in-port has %d connections, want 1", n)
	}
	if _, ok := inp.RemotePorts["cn.net"]; !ok {
		t.Errorf("net in-port is not fed by the chainNet process: %v", inp.RemotePorts)
	}

	// The subset process must have no out-ports so that scipipe
	// selects it as the driver.
	if n := len(su.OutPorts()); n != 0 {
		t.Errorf("subset process has %d out-ports, want 0", n)
	}

	cmds := []struct {
		proc *scipipe.Process
		want []string
	}{
		{cn.(*scipipe.Process), []string{"chainNet", "all.chain", "chrom.sizes", "gene.sizes", "{o:net}", "/dev/null"}},
		{su.(*scipipe.Process), []string{"netChainSubset", "{i:net}", "all.chain", "out.chain"}},
	}
	for _, c := range cmds {
		for _, w := range c.want {
			if !strings.Contains(c.proc.CommandPattern, w) {
				t.Errorf("%s command %q does not contain %q", c.proc.Name(), c.proc.CommandPattern, w)
			}
		}
	}
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriteChainList(t *testing.T) {

	chunks := []string{"split/c000.fa", "split/c001.fa", "split/c002.fa"}

	var buf bytes.Buffer
	if err := writeChainList(&buf, "tmp/chain", chunks); err != nil {
		t.Fatal(err)
	}

	want := "tmp/chain/c000.chain\ntmp/chain/c001.chain\ntmp/chain/c002.chain\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}

	// A failing writer must surface the error so that no chunk is
	// silently dropped from the merge.
	if err := writeChainList(failWriter{}, "tmp/chain", chunks); err == nil {
		t.Error("write error was not returned")
	}
}
