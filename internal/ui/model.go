package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"villaoasis/internal/carousel"
	"villaoasis/internal/config"
	"villaoasis/internal/content"
	"villaoasis/internal/domain"
	"villaoasis/internal/eventbus"
	"villaoasis/internal/ui/input"
	inputtypes "villaoasis/internal/ui/input/types"
	"villaoasis/internal/ui/state"
	"villaoasis/internal/ui/viewmodels"
	"villaoasis/internal/ui/views"
)

// Carousel names used in events, metrics and the kiosk feed
const (
	GalleryCarousel = "gallery"
	ReviewsCarousel = "reviews"
)

const statusTimeout = 3 * time.Second

// Model represents the UI state
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	catalog *content.Catalog
	log     *zap.SugaredLogger
	state   *state.AppState // centralized state

	gallery *carousel.Engine[domain.GalleryImage]
	reviews *carousel.Engine[domain.Review]

	inPagerMode bool // tracks if we're currently in pager mode
	dragging    bool // a mouse press on the gallery awaits its release
	mounted     bool
	torndown    bool

	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler
	pager        *PagerOps
}

// NewModel creates the UI model and both carousels. sched delivers
// autoplay timers; nil disables autoplay.
func NewModel(cfg *config.Config, catalog *content.Catalog, sched carousel.Scheduler, bus eventbus.EventBus, log *zap.SugaredLogger) (*Model, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	m := &Model{
		bus:          bus,
		config:       cfg,
		catalog:      catalog,
		log:          log.Named("ui"),
		state:        state.NewAppState(len(catalog.Attractions)),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		pager:        NewPagerOps(),
	}
	observer := carousel.ObserverFunc(m.observe)

	gallery, err := carousel.NewImage(catalog.Gallery, sched,
		carousel.WithName(GalleryCarousel),
		carousel.WithInterval(cfg.Carousel.GalleryInterval()),
		carousel.WithObserver(observer))
	if err != nil {
		return nil, fmt.Errorf("gallery carousel: %w", err)
	}
	reviews, err := carousel.NewPaged(catalog.Reviews, sched,
		carousel.WithName(ReviewsCarousel),
		carousel.WithInterval(cfg.Carousel.ReviewsInterval()),
		carousel.WithObserver(observer))
	if err != nil {
		return nil, fmt.Errorf("reviews carousel: %w", err)
	}
	m.gallery = gallery
	m.reviews = reviews

	m.viewModel = viewmodels.NewViewModel(m.state, catalog, gallery, reviews, m.inputHandler.Keys(), time.Now().Year())
	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p Terminal) {
	m.pager.SetProgram(p)
}

// Init mounts both carousels
func (m *Model) Init() tea.Cmd {
	m.mount()
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.torndown {
			return m, nil
		}
		ctx := &input.ModelContext{State: m.state}
		actions := m.inputHandler.HandleKey(msg, ctx)

		cmds := []tea.Cmd{}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case timerFiredMsg:
		if msg.fire != nil {
			msg.fire()
		}
		return m, nil

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode || m.torndown {
		return ""
	}
	if m.state.Width == 0 {
		return "Loading..."
	}
	return m.renderer.Render(m.viewModel.BuildViewState())
}

// Teardown stops both carousels. It is idempotent and safe to call after
// the program has exited.
func (m *Model) Teardown() {
	if m.torndown {
		return
	}
	m.torndown = true
	m.gallery.Stop()
	m.reviews.Stop()
	m.publish(eventbus.CarouselStoppedEvent{State: toDomainState(m.gallery.Snapshot())})
	m.publish(eventbus.CarouselStoppedEvent{State: toDomainState(m.reviews.Snapshot())})
	m.log.Infow("carousels stopped")
}

// Gallery returns the gallery carousel
func (m *Model) Gallery() *carousel.Engine[domain.GalleryImage] { return m.gallery }

// Reviews returns the reviews carousel
func (m *Model) Reviews() *carousel.Engine[domain.Review] { return m.reviews }

// State returns the application state
func (m *Model) State() *state.AppState { return m.state }

func (m *Model) mount() {
	if m.mounted {
		return
	}
	m.mounted = true
	m.gallery.Start()
	m.reviews.Start()
	m.publish(eventbus.CarouselStartedEvent{State: toDomainState(m.gallery.Snapshot())})
	m.publish(eventbus.CarouselStartedEvent{State: toDomainState(m.reviews.Snapshot())})
	m.publish(eventbus.AppReadyEvent{Carousels: []string{GalleryCarousel, ReviewsCarousel}})
	m.log.Infow("carousels started",
		"gallery_interval", m.gallery.Interval(),
		"reviews_interval", m.reviews.Interval())
}

func (m *Model) resize(width, height int) {
	m.state.SetDimensions(width, height)
	widthPx := width * m.config.Terminal.CellWidthPx
	m.gallery.OnViewportChange(widthPx)
	m.reviews.OnViewportChange(widthPx)
	m.publish(eventbus.ViewportResizedEvent{Columns: width, Rows: height, WidthPx: widthPx})
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.CycleSectionAction:
		from, to := m.state.CycleSection(a.Delta)
		m.sectionChanged(from, to)

	case inputtypes.GoToSectionAction:
		from := m.state.Section
		if m.state.SetSection(a.Section) {
			m.sectionChanged(from, a.Section)
		}

	case inputtypes.CarouselStepAction:
		switch m.state.Section {
		case state.SectionGallery:
			m.gallery.Advance(a.Delta)
			return m.galleryStatus()
		case state.SectionReviews:
			m.reviews.Advance(a.Delta)
			return m.reviewsStatus()
		}

	case inputtypes.CarouselJumpAction:
		switch m.state.Section {
		case state.SectionGallery:
			if a.Slot < m.gallery.Len() {
				m.gallery.GoTo(a.Slot)
				return m.galleryStatus()
			}
		case state.SectionReviews:
			// One dot per page; there is no dot past the last page
			if a.Slot < m.reviews.PageCount() {
				m.reviews.GoToPage(a.Slot)
				return m.reviewsStatus()
			}
		}

	case inputtypes.MoveCursorAction:
		m.state.MoveCursor(a.Delta)

	case inputtypes.OpenAttractionAction:
		return m.openAttraction()

	case inputtypes.OpenReviewsAction:
		doc := views.ReviewsDocument(m.catalog.Villa, m.catalog.Reviews)
		return m.pager.showCmd("reviews", doc)

	case inputtypes.ShowHelpAction:
		m.state.ShowHelp = a.Visible
		if !a.Visible {
			m.state.HelpScrollOffset = 0
		}

	case inputtypes.ScrollHelpAction:
		m.state.ScrollHelp(a.Delta)

	case inputtypes.QuitAction:
		m.log.Infow("quit requested", "force", a.Force)
		m.Teardown()
		return tea.Quit
	}

	return nil
}

// handleMouse turns a left-button drag on the gallery into a swipe. Mouse
// columns are converted to pixels like the viewport width.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.torndown || m.state.ShowHelp || m.state.Section != state.SectionGallery {
		m.dragging = false
		return nil
	}
	x := float64(msg.X * m.config.Terminal.CellWidthPx)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		m.dragging = true
		m.gallery.OnTouchStart(x)
	case tea.MouseActionRelease:
		if !m.dragging {
			return nil
		}
		m.dragging = false
		before := m.gallery.Index()
		m.gallery.OnTouchEnd(x)
		if m.gallery.Index() != before {
			return m.galleryStatus()
		}
	}
	return nil
}

func (m *Model) openAttraction() tea.Cmd {
	if len(m.catalog.Attractions) == 0 {
		return nil
	}
	slug := m.catalog.Attractions[m.state.AttractionCursor].Slug
	attraction, err := m.catalog.AttractionBySlug(slug)
	if err != nil {
		m.log.Warnw("attraction lookup failed", "slug", slug, "error", err)
		return m.setStatus(fmt.Sprintf("Unknown attraction %q", slug))
	}
	doc := views.AttractionDocument(m.catalog.Villa, attraction)
	return m.pager.showCmd(attraction.Title, doc)
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		if ev, ok := msg.Event.(eventbus.ErrorEvent); ok {
			return m, m.setStatus("Error: " + ev.Message)
		}
		return m, nil

	case pagerMsg:
		if msg.err != nil {
			m.log.Warnw("pager failed", "document", msg.title, "error", msg.err)
			return m, m.setStatus("Could not open " + msg.title)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.state.ClearStatus(msg.seq)
		return m, nil

	case ShutdownMsg:
		m.log.Infow("shutdown requested", "reason", msg.Reason)
		m.Teardown()
		return m, tea.Quit

	default:
		// Other messages are handled elsewhere
		return m, nil
	}
}

func (m *Model) galleryStatus() tea.Cmd {
	return m.setStatus(fmt.Sprintf("Image %d of %d", m.gallery.Index()+1, m.gallery.Len()))
}

func (m *Model) reviewsStatus() tea.Cmd {
	return m.setStatus(fmt.Sprintf("Reviews page %d of %d", m.reviews.ActivePage()+1, m.reviews.PageCount()))
}

// setStatus shows msg and schedules its removal
func (m *Model) setStatus(msg string) tea.Cmd {
	seq := m.state.SetStatus(msg)
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m *Model) sectionChanged(from, to state.Section) {
	m.dragging = false
	m.log.Debugw("section changed", "from", from.String(), "to", to.String())
	m.publish(eventbus.SectionChangedEvent{From: from.String(), To: to.String()})
}

// observe forwards carousel events to the bus. It runs on the update loop.
func (m *Model) observe(ev carousel.Event) {
	m.log.Debugw("carousel event",
		"carousel", ev.Carousel,
		"kind", ev.Kind.String(),
		"trigger", ev.Trigger.String(),
		"from", ev.From,
		"to", ev.To,
		"page_size", ev.PageSize)

	switch ev.Kind {
	case carousel.KindMoved:
		m.publish(eventbus.CarouselMovedEvent{
			Carousel: ev.Carousel,
			Trigger:  ev.Trigger.String(),
			From:     ev.From,
			To:       ev.To,
			State:    m.carouselState(ev.Carousel),
		})
	case carousel.KindPageSizeChanged:
		m.publish(eventbus.PageSizeChangedEvent{
			Carousel: ev.Carousel,
			From:     ev.From,
			To:       ev.To,
			State:    m.carouselState(ev.Carousel),
		})
	case carousel.KindTimerArmed, carousel.KindTimerCanceled:
		m.publish(eventbus.CarouselTimerEvent{
			Carousel: ev.Carousel,
			Armed:    ev.Kind == carousel.KindTimerArmed,
			Trigger:  ev.Trigger.String(),
		})
	}
}

func (m *Model) carouselState(name string) domain.CarouselState {
	switch {
	case name == GalleryCarousel && m.gallery != nil:
		return toDomainState(m.gallery.Snapshot())
	case name == ReviewsCarousel && m.reviews != nil:
		return toDomainState(m.reviews.Snapshot())
	}
	return domain.CarouselState{Name: name}
}

func (m *Model) publish(ev eventbus.DomainEvent) {
	if m.bus == nil {
		return
	}
	m.bus.Publish(ev)
}

func toDomainState(s carousel.State) domain.CarouselState {
	return domain.CarouselState{
		Name:       s.Name,
		Variant:    s.Variant.String(),
		Index:      s.Index,
		PageSize:   s.PageSize,
		PageCount:  s.PageCount,
		ActivePage: s.ActivePage,
		Len:        s.Len,
		Running:    s.Running,
	}
}
