package commands

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/langel/movieshell/internal/application/asker"
	"github.com/langel/movieshell/internal/application/collection"
	"github.com/langel/movieshell/internal/domain"
	"github.com/langel/movieshell/internal/ports"
)

// Deps bundles the collaborators of collection commands.
type Deps struct {
	Console    ports.Console
	Asker      *asker.Asker
	Collection *collection.Manager
}

// Show prints every movie.
type Show struct {
	base
	Deps
}

func NewShow(deps Deps) *Show {
	return &Show{base: base{name: "show", usage: "show", description: "print all elements of the collection"}, Deps: deps}
}

func (c *Show) Apply(argument string) domain.ExecutionResult {
	if argument != "" {
		return c.wrongArgs()
	}
	return domain.OK(c.Collection.String())
}

// Add asks for a movie and stores it.
type Add struct {
	base
	Deps
}

func NewAdd(deps Deps) *Add {
	return &Add{base: base{name: "add", usage: "add {element}", description: "add a new element to the collection"}, Deps: deps}
}

func (c *Add) Apply(argument string) domain.ExecutionResult {
	if argument != "" {
		return c.wrongArgs()
	}
	c.Console.Println("******** Creating a new movie record ********")
	m, err := c.Asker.AskMovie(c.Collection.FreeID())
	if err != nil {
		return askFailed(err)
	}
	if errs := m.Validate(); len(errs) > 0 {
		return domain.Fail(strings.Join(errs, "\n"))
	}
	c.Collection.Add(m)
	return domain.OK("New movie added successfully!")
}

// Update replaces the movie with the given id.
type Update struct {
	base
	Deps
}

func NewUpdate(deps Deps) *Update {
	return &Update{base: base{name: "update", usage: "update id {element}", description: "update the element whose id equals the given one"}, Deps: deps}
}

func (c *Update) Apply(argument string) domain.ExecutionResult {
	id, res, ok := c.parseID(argument)
	if !ok {
		return res
	}
	old, found := c.Collection.Get(id)
	if !found {
		return domain.Fail(fmt.Sprintf("Element with id=%d not found!", id))
	}
	c.Console.Println(fmt.Sprintf("******** Updating movie record (id=%d) ********", id))
	m, err := c.Asker.AskMovie(id)
	if err != nil {
		return askFailed(err)
	}
	if errs := m.Validate(); len(errs) > 0 {
		return domain.Fail(strings.Join(errs, "\n"))
	}
	m.CreationDate = old.CreationDate
	c.Collection.Remove(id)
	c.Collection.Add(m)
	return domain.OK("Element updated successfully!")
}

// RemoveByID deletes one movie.
type RemoveByID struct {
	base
	Deps
}

func NewRemoveByID(deps Deps) *RemoveByID {
	return &RemoveByID{base: base{name: "remove_by_id", usage: "remove_by_id id", description: "remove the element with the given id"}, Deps: deps}
}

func (c *RemoveByID) Apply(argument string) domain.ExecutionResult {
	id, res, ok := c.parseID(argument)
	if !ok {
		return res
	}
	if !c.Collection.Remove(id) {
		return domain.Fail(fmt.Sprintf("Element with id=%d not found!", id))
	}
	return domain.OK(fmt.Sprintf("Element with id=%d removed successfully!", id))
}

// Clear empties the collection.
type Clear struct {
	base
	Deps
}

func NewClear(deps Deps) *Clear {
	return &Clear{base: base{name: "clear", usage: "clear", description: "clear the collection"}, Deps: deps}
}

func (c *Clear) Apply(argument string) domain.ExecutionResult {
	if argument != "" {
		return c.wrongArgs()
	}
	c.Collection.Clear()
	return domain.OK("Collection cleared!")
}

// AddIfMax adds a movie greater than every stored one.
type AddIfMax struct {
	base
	Deps
}

func NewAddIfMax(deps Deps) *AddIfMax {
	return &AddIfMax{base: base{
		name:        "add_if_max",
		usage:       "add_if_max {element}",
		description: "add a new element if it is greater than the largest element of the collection",
	}, Deps: deps}
}

func (c *AddIfMax) Apply(argument string) domain.ExecutionResult {
	if argument != "" {
		return c.wrongArgs()
	}
	return c.addIf(func(m domain.Movie) bool {
		top, ok := c.Collection.Max()
		return !ok || m.Compare(top) > 0
	}, "Element does not exceed the largest one in the collection!")
}

// AddIfMin adds a movie smaller than every stored one.
type AddIfMin struct {
	base
	Deps
}

func NewAddIfMin(deps Deps) *AddIfMin {
	return &AddIfMin{base: base{
		name:        "add_if_min",
		usage:       "add_if_min {element}",
		description: "add a new element if it is smaller than the smallest element of the collection",
	}, Deps: deps}
}

func (c *AddIfMin) Apply(argument string) domain.ExecutionResult {
	if argument != "" {
		return c.wrongArgs()
	}
	return c.addIf(func(m domain.Movie) bool {
		low, ok := c.Collection.Min()
		return !ok || m.Compare(low) < 0
	}, "Element is not smaller than the smallest one in the collection!")
}

// RemoveLower deletes every movie smaller than the asked one.
type RemoveLower struct {
	base
	Deps
}

func NewRemoveLower(deps Deps) *RemoveLower {
	return &RemoveLower{base: base{
		name:        "remove_lower",
		usage:       "remove_lower {element}",
		description: "remove all elements smaller than the given one",
	}, Deps: deps}
}

func (c *RemoveLower) Apply(argument string) domain.ExecutionResult {
	if argument != "" {
		return c.wrongArgs()
	}
	c.Console.Println("******** Enter the element to compare with ********")
	ref, err := c.Asker.AskMovie(c.Collection.FreeID())
	if err != nil {
		return askFailed(err)
	}
	removed := c.Collection.RemoveIf(func(m domain.Movie) bool { return m.Compare(ref) < 0 })
	return domain.OK(fmt.Sprintf("Elements removed: %d", removed))
}

// FilterLessThanScreenwriter lists movies whose screenwriter is smaller than
// the asked one.
type FilterLessThanScreenwriter struct {
	base
	Deps
}

func NewFilterLessThanScreenwriter(deps Deps) *FilterLessThanScreenwriter {
	return &FilterLessThanScreenwriter{base: base{
		name:        "filter_less_than_screenwriter",
		usage:       "filter_less_than_screenwriter screenwriter",
		description: "print elements whose screenwriter is less than the given one",
	}, Deps: deps}
}

func (c *FilterLessThanScreenwriter) Apply(argument string) domain.ExecutionResult {
	if argument != "" {
		return c.wrongArgs()
	}
	c.Console.Println("******** Enter the screenwriter to compare with ********")
	ref, err := c.Asker.AskPerson()
	if err != nil {
		return askFailed(err)
	}
	var matched []domain.Movie
	for _, m := range c.Collection.All() {
		if m.Screenwriter != nil && m.Screenwriter.Compare(ref) < 0 {
			matched = append(matched, m)
		}
	}
	if len(matched) == 0 {
		return domain.OK("No matching elements.")
	}
	return domain.OK(collection.Join(matched))
}

// PrintDescending lists movies by descending id.
type PrintDescending struct {
	base
	Deps
}

func NewPrintDescending(deps Deps) *PrintDescending {
	return &PrintDescending{base: base{
		name:        "print_descending",
		usage:       "print_descending",
		description: "print the elements of the collection in descending id order",
	}, Deps: deps}
}

func (c *PrintDescending) Apply(argument string) domain.ExecutionResult {
	if argument != "" {
		return c.wrongArgs()
	}
	movies := c.Collection.All()
	if len(movies) == 0 {
		return domain.OK("The collection is empty!")
	}
	slices.SortFunc(movies, func(a, b domain.Movie) int {
		switch {
		case a.ID > b.ID:
			return -1
		case a.ID < b.ID:
			return 1
		}
		return 0
	})
	return domain.OK(collection.Join(movies))
}

// SumOfOscarCount totals oscarsCount.
type SumOfOscarCount struct {
	base
	Deps
}

func NewSumOfOscarCount(deps Deps) *SumOfOscarCount {
	return &SumOfOscarCount{base: base{
		name:        "sum_of_oscar_count",
		usage:       "sum_of_oscar_count",
		description: "print the sum of oscarsCount over all elements",
	}, Deps: deps}
}

func (c *SumOfOscarCount) Apply(argument string) domain.ExecutionResult {
	if argument != "" {
		return c.wrongArgs()
	}
	var sum int64
	for _, m := range c.Collection.All() {
		sum += m.OscarsCount
	}
	return domain.OK(fmt.Sprintf("Sum of oscarsCount: %d", sum))
}

func (d Deps) addIf(accept func(domain.Movie) bool, rejected string) domain.ExecutionResult {
	d.Console.Println("******** Enter the new element ********")
	m, err := d.Asker.AskMovie(d.Collection.FreeID())
	if err != nil {
		return askFailed(err)
	}
	if errs := m.Validate(); len(errs) > 0 {
		return domain.Fail(strings.Join(errs, "\n"))
	}
	if !accept(m) {
		return domain.Fail(rejected)
	}
	d.Collection.Add(m)
	return domain.OK("Element added successfully!")
}

func (b base) parseID(argument string) (int64, domain.ExecutionResult, bool) {
	if argument == "" {
		return 0, domain.Fail(fmt.Sprintf("id not specified!\nUsage: '%s'", b.usage)), false
	}
	id, err := strconv.ParseInt(argument, 10, 64)
	if err != nil {
		return 0, domain.Fail("id must be a number!"), false
	}
	return id, domain.ExecutionResult{}, true
}

func askFailed(err error) domain.ExecutionResult {
	if errors.Is(err, domain.ErrInputAborted) {
		return domain.Fail("Cancelled...")
	}
	return domain.Fail(fmt.Sprintf("Input ended before the element was complete: %v", err))
}
