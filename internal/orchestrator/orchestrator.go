package orchestrator

import (
	"context"
	"log"
	"time"
)

type Step struct {
	Name string
	Run  func(ctx context.Context) error
}

type Chain struct {
	Steps []Step
}

func New() *Chain {
	return &Chain{}
}

func (c *Chain) Add(name string, fn func(ctx context.Context) error) {
	c.Steps = append(c.Steps, Step{
		Name: name,
		Run:  fn,
	})
}

func (c *Chain) Run(ctx context.Context) error {
	for i, step := range c.Steps {
		logSection(step.Name)

		start := time.Now()
		if err := step.Run(ctx); err != nil {
			return err
		}

		log.Printf("Step %d completed in %s\n", i+1, time.Since(start))
	}
	return nil
}

func logSection(title string) {
	log.Println("=====================================================")
	log.Println(title)
	log.Println("=====================================================")
}
