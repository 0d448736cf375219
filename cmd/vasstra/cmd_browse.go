package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"vasstra/internal/api"
	"vasstra/internal/catalog"
	"vasstra/internal/store"

	"vasstra/cmd/vasstra/ui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog interactively",
	Long: `Opens an interactive catalog browser.

Keys:
  ↑/↓        move          /       search
  s          cycle sort    w       toggle wishlist
  a          add to cart   enter   product details
  q, ctrl+c  quit`,
	RunE: runBrowse,
}

type browseState int

const (
	browseLoading browseState = iota
	browseList
	browseDetail
	browseError
)

type shopLoadedMsg struct{ data *api.ShopData }
type shopFailedMsg struct{ err error }
type actionDoneMsg struct{ note string }

type browseModel struct {
	state    browseState
	styles   ui.Styles
	spinner  spinner.Model
	search   textinput.Model
	err      error
	note     string
	width    int
	height   int
	all      []catalog.Product
	visible  []catalog.Product
	cursor   int
	sortKey  catalog.SortKey
	querying bool
}

func newBrowseModel() browseModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	ti := textinput.New()
	ti.Placeholder = "Search products..."
	ti.CharLimit = 64

	return browseModel{
		state:   browseLoading,
		styles:  app.styles,
		spinner: sp,
		search:  ti,
		sortKey: catalog.ParseSortKey(app.cfg.Shop.DefaultSort),
	}
}

func (m browseModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadShop)
}

func loadShop() tea.Msg {
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.GetAPITimeout())
	defer cancel()

	data, err := app.client.FetchShopData(ctx)
	if err != nil {
		return shopFailedMsg{err: err}
	}
	return shopLoadedMsg{data: data}
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case shopLoadedMsg:
		m.all = msg.data.Products
		m.state = browseList
		m.refresh()
		return m, nil

	case shopFailedMsg:
		m.err = msg.err
		m.state = browseError
		return m, nil

	case actionDoneMsg:
		m.note = msg.note
		return m, nil

	case spinner.TickMsg:
		if m.state == browseLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m browseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.querying {
		switch msg.Type {
		case tea.KeyEnter, tea.KeyEsc:
			m.querying = false
			m.search.Blur()
			m.refresh()
			return m, nil
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.refresh()
			return m, cmd
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.state == browseDetail {
			m.state = browseList
		}
		return m, nil

	case "/":
		if m.state == browseList {
			m.querying = true
			m.search.Focus()
			return m, textinput.Blink
		}
		return m, nil

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
		return m, nil

	case "s":
		if m.state == browseList {
			m.sortKey = nextSortKey(m.sortKey)
			m.refresh()
		}
		return m, nil

	case "enter":
		if m.state == browseList && len(m.visible) > 0 {
			m.state = browseDetail
		}
		return m, nil

	case "w":
		if p, ok := m.selected(); ok {
			return m, toggleWishlist(p)
		}
		return m, nil

	case "a":
		if p, ok := m.selected(); ok {
			return m, addToCart(p)
		}
		return m, nil
	}
	return m, nil
}

func (m *browseModel) selected() (catalog.Product, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return catalog.Product{}, false
	}
	return m.visible[m.cursor], true
}

// refresh recomputes the visible slice from the search text and sort key.
func (m *browseModel) refresh() {
	query := strings.ToLower(strings.TrimSpace(m.search.Value()))
	filtered := m.all
	if query != "" {
		filtered = nil
		for _, p := range m.all {
			if strings.Contains(strings.ToLower(p.Name), query) ||
				strings.Contains(strings.ToLower(p.Category), query) {
				filtered = append(filtered, p)
			}
		}
	}
	m.visible = catalog.Sort(filtered, m.sortKey)
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func nextSortKey(k catalog.SortKey) catalog.SortKey {
	switch k {
	case catalog.SortFeatured:
		return catalog.SortPriceAsc
	case catalog.SortPriceAsc:
		return catalog.SortPriceDesc
	case catalog.SortPriceDesc:
		return catalog.SortNewest
	default:
		return catalog.SortFeatured
	}
}

func toggleWishlist(p catalog.Product) tea.Cmd {
	return func() tea.Msg {
		in, err := app.store.InWishlist(p.ID)
		if err != nil {
			return actionDoneMsg{note: err.Error()}
		}
		if in {
			if err := app.store.RemoveWishlistItem(p.ID); err != nil {
				return actionDoneMsg{note: err.Error()}
			}
			return actionDoneMsg{note: p.Name + " removed from wishlist"}
		}
		item := store.WishlistItem{
			ProductID:     p.ID,
			Name:          p.Name,
			Price:         p.Price,
			OriginalPrice: p.OriginalPrice,
			Image:         p.Image,
			Category:      p.Category,
		}
		if err := app.store.AddWishlistItem(item); err != nil {
			return actionDoneMsg{note: err.Error()}
		}
		return actionDoneMsg{note: p.Name + " added to wishlist"}
	}
}

func addToCart(p catalog.Product) tea.Cmd {
	return func() tea.Msg {
		size := ""
		if len(p.Sizes) > 0 {
			size = p.Sizes[0]
		}
		color := ""
		if len(p.Colors) > 0 {
			color = p.Colors[0]
		}
		item := store.CartItem{
			ProductID:     p.ID,
			Name:          p.Name,
			Price:         p.Price,
			OriginalPrice: p.OriginalPrice,
			Image:         p.Image,
			Size:          size,
			Color:         color,
			Category:      p.Category,
			Quantity:      1,
		}
		if err := app.store.AddCartItem(item); err != nil {
			return actionDoneMsg{note: err.Error()}
		}
		return actionDoneMsg{note: p.Name + " added to cart"}
	}
}

func (m browseModel) View() string {
	s := m.styles

	switch m.state {
	case browseLoading:
		return fmt.Sprintf("\n %s Loading the catalog...\n", m.spinner.View())

	case browseError:
		return "\n " + s.Error.Render("Could not load the shop: "+m.err.Error()) + "\n"

	case browseDetail:
		if p, ok := m.selected(); ok {
			return m.detailView(p)
		}
		return ""
	}

	var sb strings.Builder
	sb.WriteString(s.Title.Render("Vasstra"))
	sb.WriteString("  " + s.Muted.Render(fmt.Sprintf("%d products · sort: %s", len(m.visible), m.sortKey)))
	sb.WriteString("\n")

	if m.querying || m.search.Value() != "" {
		sb.WriteString(m.search.View())
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	if len(m.visible) == 0 {
		sb.WriteString(s.Muted.Render(" Nothing matches."))
		sb.WriteString("\n")
	}

	// Keep the cursor on screen for long catalogs.
	pageSize := m.height - 8
	if pageSize < 5 {
		pageSize = 20
	}
	start := 0
	if m.cursor >= pageSize {
		start = m.cursor - pageSize + 1
	}
	end := start + pageSize
	if end > len(m.visible) {
		end = len(m.visible)
	}

	for i := start; i < end; i++ {
		p := m.visible[i]
		line := fmt.Sprintf("%-32s %-14s ₹%.2f", truncate(p.Name, 32), truncate(p.Category, 14), p.Price)
		if i == m.cursor {
			sb.WriteString(s.Selected.Render("› " + line))
		} else {
			sb.WriteString(s.Body.Render("  " + line))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	if m.note != "" {
		sb.WriteString(s.Success.Render(" " + m.note))
		sb.WriteString("\n")
	}
	sb.WriteString(s.Muted.Render(" ↑/↓ move · / search · s sort · w wishlist · a cart · enter details · q quit"))
	sb.WriteString("\n")
	return sb.String()
}

func (m browseModel) detailView(p catalog.Product) string {
	s := m.styles
	var sb strings.Builder

	sb.WriteString(s.Title.Render(p.Name))
	sb.WriteString("\n")
	sb.WriteString(s.Muted.Render(p.Category))
	if p.Subcategory != "" {
		sb.WriteString(s.Muted.Render(" / " + p.Subcategory))
	}
	sb.WriteString("\n\n")

	sb.WriteString(s.Price.Render(fmt.Sprintf("₹%.2f", p.Price)))
	if p.Discounted() {
		sb.WriteString("  " + s.Strike.Render(fmt.Sprintf("₹%.2f", p.OriginalPrice)))
	}
	sb.WriteString("\n\n")

	if len(p.StockBySize) > 0 {
		sb.WriteString(s.Subtitle.Render("Sizes"))
		sb.WriteString("\n")
		for _, st := range p.StockBySize {
			line := fmt.Sprintf("  %-4s", st.Size)
			if st.Quantity == 0 {
				line += s.Error.Render("out of stock")
			} else {
				line += fmt.Sprintf("%d in stock", st.Quantity)
			}
			sb.WriteString(line)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	if len(p.Colors) > 0 {
		sb.WriteString(s.Muted.Render("Colors: " + strings.Join(p.Colors, ", ")))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(s.Muted.Render(" esc back · w wishlist · a cart · q quit"))
	sb.WriteString("\n")
	return sb.String()
}

// truncate shortens s to at most n characters. It counts runes so
// multibyte product names are never cut mid-character.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}

func runBrowse(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(newBrowseModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
