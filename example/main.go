package main

import (
	"fmt"

	"github.com/mgnsk/intrusive"
)

// Task carries its own list links by embedding a Node.
type Task struct {
	intrusive.Node[*Task]

	ID int
}

func main() {
	var pending intrusive.List[Task, *Task]

	// The list stores the tasks without allocating or copying.
	for id := 1; id <= 3; id++ {
		pending.PushBack(&Task{ID: id})
	}

	fmt.Println("tasks:", pending.Len())

	for e := pending.Front(); e != nil; e = e.Next() {
		fmt.Println("task", e.ID)
	}

	// Any task removes in constant time given only the task.
	pending.Remove(pending.Front().Next())

	fmt.Println("tasks:", pending.Len())

	for it := pending.Begin(); it.Ok(); it = it.Next() {
		fmt.Println("task", it.Elem().ID)
	}
}
