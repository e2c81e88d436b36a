package main

import (
	"fmt"

	"github.com/killercup/shareable"
	"github.com/spf13/cobra"
)

func cmdDemo() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through unshared and shared cells",
		Args:  cobra.NoArgs,
		Run:   runDemo,
	}
}

func runDemo(_ *cobra.Command, _ []string) {
	demoScalar()
	demoObject()
}

func demoScalar() {
	// A single owner pays nothing for synchronization.
	value := shareable.New(float32(63.23))
	fmt.Println("unshared scalar:", value)

	value.Set(78.3)
	fmt.Println("after set:", value)

	// The first Dup promotes the lineage. Both handles may now be used
	// from different goroutines; the channel handoff makes the write
	// visible to the reader.
	dup := value.Dup()
	fmt.Println("promoted:", value.IsShared())

	ready := make(chan struct{})
	done := make(chan struct{})
	go func() {
		<-ready
		fmt.Println("other goroutine sees:", dup)
		close(done)
	}()
	value.Set(31.83)
	close(ready)
	<-done
}

func demoObject() {
	// Objects publish immutable snapshots: handles hand off the same
	// way, and a snapshot taken before a set keeps its contents.
	value := shareable.NewObject("abc")
	dup := value.Dup()
	before := value.Get()

	ready := make(chan struct{})
	done := make(chan struct{})
	go func() {
		<-ready
		fmt.Println("other goroutine sees:", *dup.Get())
		close(done)
	}()
	value.Set("xyz")
	close(ready)
	<-done

	fmt.Println("snapshot from before set:", *before)
	fmt.Println("current value:", *value.Get())
}
