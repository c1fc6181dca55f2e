package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/Mmostafa1999/Habit-Tracker/internal/models"
)

type CategoryAddCmd struct {
	Name  string `arg:"" help:"Category name."`
	Color string `short:"c" help:"Display color (hex or name)." default:"blue"`
}

func (c *CategoryAddCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	existing, err := ctx.Store.GetAllCategories()
	if err != nil {
		return err
	}
	for _, cat := range existing {
		if cat.Name == c.Name {
			return fmt.Errorf("category %q already exists", c.Name)
		}
	}

	cat := models.Category{
		ID:    uuid.New().String(),
		Name:  c.Name,
		Color: c.Color,
		Order: len(existing),
	}
	if err := ctx.Store.AddCategory(cat); err != nil {
		return err
	}

	fmt.Printf("Added category: %s (ID: %s)\n", c.Name, cat.ID)
	return nil
}

type CategoryListCmd struct{}

func (c *CategoryListCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	categories, err := ctx.Store.GetAllCategories()
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		fmt.Println("No categories found")
		return nil
	}

	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}
	counts := map[string]int{}
	for _, h := range habits {
		counts[h.Category]++
	}

	fmt.Println("Categories:")
	for _, cat := range categories {
		fmt.Printf("  %-20s %s  (%d habits)\n", cat.Name, cat.Color, counts[cat.ID])
	}
	return nil
}

type CategoryEditCmd struct {
	Category string  `arg:"" help:"Category name or ID."`
	Name     *string `help:"New name."`
	Color    *string `help:"New color."`
}

func (c *CategoryEditCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	id, err := resolveCategoryID(ctx, c.Category)
	if err != nil {
		return err
	}
	cat, err := ctx.Store.GetCategory(id)
	if err != nil {
		return err
	}

	if c.Name != nil {
		cat.Name = *c.Name
	}
	if c.Color != nil {
		cat.Color = *c.Color
	}

	if err := ctx.Store.UpdateCategory(cat); err != nil {
		return err
	}

	fmt.Printf("Updated category: %s\n", cat.Name)
	return nil
}

type CategoryDeleteCmd struct {
	Category string `arg:"" help:"Category name or ID."`
}

func (c *CategoryDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	id, err := resolveCategoryID(ctx, c.Category)
	if err != nil {
		return err
	}
	cat, err := ctx.Store.GetCategory(id)
	if err != nil {
		return err
	}

	if err := ctx.Store.DeleteCategory(id); err != nil {
		return err
	}

	fmt.Printf("Deleted category: %s (habits keep their history, category cleared)\n", cat.Name)
	return nil
}
