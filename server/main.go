package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/gofiber/fiber/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/meikuraledutech/gantt"
	"github.com/meikuraledutech/gantt/postgres"
)

func main() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	pool, err := pgxpool.New(context.Background(), dbURL)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	var store gantt.Store = postgres.New(pool)

	opts := gantt.Options{
		OnDepthExceeded: func(taskID string) {
			log.Printf("cascade depth exceeded at task %s", taskID)
		},
	}

	app := fiber.New()

	// ── Schema ────────────────────────────────────────────────────────
	app.Post("/schema", func(c fiber.Ctx) error {
		if err := store.CreateSchema(c.Context()); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"message": "schema created"})
	})

	app.Delete("/schema", func(c fiber.Ctx) error {
		if err := store.DropSchema(c.Context()); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"message": "schema dropped"})
	})

	// ── Charts (bulk) ─────────────────────────────────────────────────
	app.Post("/charts", func(c fiber.Ctx) error {
		var chart gantt.Chart
		if err := c.Bind().JSON(&chart); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		result, err := store.CreateChart(c.Context(), &chart)
		if errors.Is(err, gantt.ErrCycleDetected) {
			return c.Status(422).JSON(fiber.Map{"error": "cycle detected"})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(201).JSON(result)
	})

	app.Get("/charts/:id", func(c fiber.Ctx) error {
		chart, err := store.GetChart(c.Context(), c.Params("id"))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		if chart == nil {
			return c.Status(404).JSON(fiber.Map{"error": "chart not found"})
		}
		return c.JSON(chart)
	})

	app.Delete("/charts/:id", func(c fiber.Ctx) error {
		if err := store.DeleteChart(c.Context(), c.Params("id")); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(204)
	})

	// ── Interaction ───────────────────────────────────────────────────
	// A drag proposes a new position for one task; the resolver answers
	// with the positions everything must take, or a blocked verdict.
	app.Post("/charts/:id/tasks/:taskID/move", func(c fiber.Ctx) error {
		var body struct {
			X float64 `json:"x"`
			Y float64 `json:"y"`
		}
		if err := c.Bind().JSON(&body); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}

		chart, err := store.GetChart(c.Context(), c.Params("id"))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		if chart == nil {
			return c.Status(404).JSON(fiber.Map{"error": "chart not found"})
		}

		mem := gantt.NewMemStore(chart.Tasks)
		resolver := gantt.NewResolver(mem, chart.Links, opts)

		res := resolver.ResolveMovement(c.Params("taskID"), body.X, body.Y)
		if res == nil {
			return c.Status(409).JSON(fiber.Map{"error": "move blocked"})
		}
		resolver.Apply(res)

		if err := persistTasks(c.Context(), store, mem); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(res)
	})

	app.Post("/charts/:id/tasks/:taskID/resize", func(c fiber.Ctx) error {
		var body struct {
			Width float64 `json:"width"`
		}
		if err := c.Bind().JSON(&body); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}

		chart, err := store.GetChart(c.Context(), c.Params("id"))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		if chart == nil {
			return c.Status(404).JSON(fiber.Map{"error": "chart not found"})
		}

		taskID := c.Params("taskID")
		mem := gantt.NewMemStore(chart.Tasks)
		if _, ok := mem.Task(taskID); !ok {
			return c.Status(404).JSON(fiber.Map{"error": "task not found"})
		}

		mem.SetBar(taskID, gantt.BarPatch{Width: &body.Width})
		resolver := gantt.NewResolver(mem, chart.Links, opts)
		resolver.ResolveAfterResize(taskID)

		if err := persistTasks(c.Context(), store, mem); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(fiber.Map{"tasks": mem.Tasks()})
	})

	// ── Tasks ─────────────────────────────────────────────────────────
	app.Post("/charts/:id/tasks", func(c fiber.Ctx) error {
		var task gantt.Task
		if err := c.Bind().JSON(&task); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		id, err := store.AddTask(c.Context(), c.Params("id"), &task)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(201).JSON(fiber.Map{"id": id})
	})

	app.Get("/charts/:id/tasks", func(c fiber.Ctx) error {
		tasks, err := store.ListTasks(c.Context(), c.Params("id"))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(tasks)
	})

	app.Get("/tasks/:id", func(c fiber.Ctx) error {
		t, err := store.GetTask(c.Context(), c.Params("id"))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		if t == nil {
			return c.Status(404).JSON(fiber.Map{"error": "task not found"})
		}
		return c.JSON(t)
	})

	app.Put("/tasks/:id", func(c fiber.Ctx) error {
		var task gantt.Task
		if err := c.Bind().JSON(&task); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		task.ID = c.Params("id")
		err := store.UpdateTask(c.Context(), &task)
		if errors.Is(err, gantt.ErrTaskNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "task not found"})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(204)
	})

	app.Delete("/tasks/:id", func(c fiber.Ctx) error {
		if err := store.DeleteTask(c.Context(), c.Params("id")); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(204)
	})

	// ── Links ─────────────────────────────────────────────────────────
	app.Post("/charts/:id/links", func(c fiber.Ctx) error {
		var link gantt.Link
		if err := c.Bind().JSON(&link); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		id, err := store.AddLink(c.Context(), c.Params("id"), &link)
		if errors.Is(err, gantt.ErrCycleDetected) {
			return c.Status(422).JSON(fiber.Map{"error": "cycle detected"})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(201).JSON(fiber.Map{"id": id})
	})

	app.Get("/charts/:id/links", func(c fiber.Ctx) error {
		links, err := store.ListLinks(c.Context(), c.Params("id"))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(links)
	})

	app.Get("/links/:id", func(c fiber.Ctx) error {
		l, err := store.GetLink(c.Context(), c.Params("id"))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		if l == nil {
			return c.Status(404).JSON(fiber.Map{"error": "link not found"})
		}
		return c.JSON(l)
	})

	app.Put("/links/:id", func(c fiber.Ctx) error {
		var link gantt.Link
		if err := c.Bind().JSON(&link); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
		}
		link.ID = c.Params("id")
		err := store.UpdateLink(c.Context(), &link)
		if errors.Is(err, gantt.ErrLinkNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "link not found"})
		}
		if errors.Is(err, gantt.ErrCycleDetected) {
			return c.Status(422).JSON(fiber.Map{"error": "cycle detected"})
		}
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(204)
	})

	app.Delete("/links/:id", func(c fiber.Ctx) error {
		if err := store.DeleteLink(c.Context(), c.Params("id")); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": err.Error()})
		}
		return c.SendStatus(204)
	})

	log.Fatal(app.Listen(":3000"))
}

// persistTasks writes every task in the working copy back to the store.
func persistTasks(ctx context.Context, store gantt.Store, mem *gantt.MemStore) error {
	for _, t := range mem.Tasks() {
		if err := store.UpdateTask(ctx, &t); err != nil {
			return err
		}
	}
	return nil
}
