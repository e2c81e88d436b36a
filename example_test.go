package shareable_test

import (
	"fmt"

	"github.com/killercup/shareable"
)

// A single owner pays no synchronization cost at all.
func ExampleNew() {
	value := shareable.New(float32(63.23))
	fmt.Println(value.Get())

	value.Set(78.3)
	fmt.Println(value.Get())

	// Output:
	// 63.23
	// 78.3
}

// Dup promotes the cell so both handles may cross goroutines. The channel
// handoff is what makes the write visible to the reader.
func ExampleCell_Dup() {
	value1 := shareable.New(float32(63.23))
	value2 := value1.Dup()

	ready := make(chan struct{})
	done := make(chan struct{})
	go func() {
		<-ready
		fmt.Println(value2.Get())
		close(done)
	}()

	value1.Set(31.83)
	close(ready)
	<-done

	// Output: 31.83
}

func ExampleNewObject() {
	value := shareable.NewObject("abc")
	fmt.Println(*value.Get())

	value.Set("xyz")
	fmt.Println(*value.Get())

	// Output:
	// abc
	// xyz
}

func ExampleObject_Dup() {
	value1 := shareable.NewObject("abc")
	value2 := value1.Dup()

	ready := make(chan struct{})
	done := make(chan struct{})
	go func() {
		<-ready
		fmt.Println(*value2.Get())
		close(done)
	}()

	value1.Set("xyz")
	close(ready)
	<-done

	// Output: xyz
}
