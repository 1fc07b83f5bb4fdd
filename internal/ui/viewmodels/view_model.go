package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"

	"villaoasis/internal/carousel"
	"villaoasis/internal/content"
	"villaoasis/internal/domain"
	"villaoasis/internal/ui/input/modes"
	"villaoasis/internal/ui/state"
	"villaoasis/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state   *state.AppState
	catalog *content.Catalog
	gallery *carousel.Engine[domain.GalleryImage]
	reviews *carousel.Engine[domain.Review]
	help    help.Model
	keys    modes.KeyMap
	year    int
}

// NewViewModel creates a new view model
func NewViewModel(
	appState *state.AppState,
	catalog *content.Catalog,
	gallery *carousel.Engine[domain.GalleryImage],
	reviews *carousel.Engine[domain.Review],
	keys modes.KeyMap,
	year int,
) *ViewModel {
	return &ViewModel{
		state:   appState,
		catalog: catalog,
		gallery: gallery,
		reviews: reviews,
		help:    help.New(),
		keys:    keys,
		year:    year,
	}
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	return views.ViewState{
		Width:            vm.state.Width,
		Height:           vm.state.Height,
		Section:          vm.state.Section,
		Villa:            vm.catalog.Villa,
		Contact:          vm.catalog.Contact,
		Headline:         vm.catalog.Headline(),
		Gallery:          vm.galleryView(),
		Reviews:          vm.reviewsView(),
		Amenities:        vm.catalog.Amenities,
		Attractions:      vm.catalog.Attractions,
		AttractionCursor: vm.state.AttractionCursor,
		Restaurants:      vm.catalog.Restaurants,
		StatusMessage:    vm.state.StatusMessage,
		ShowHelp:         vm.state.ShowHelp,
		HelpScrollOffset: vm.state.HelpScrollOffset,
		HelpModel:        vm.help,
		Keys:             vm.keys,
		Year:             vm.year,
	}
}

func (vm *ViewModel) galleryView() views.GalleryView {
	s := vm.gallery.Snapshot()
	return views.GalleryView{
		Image:   vm.gallery.Current(),
		Index:   s.Index,
		Len:     s.Len,
		Running: s.Running,
	}
}

func (vm *ViewModel) reviewsView() views.ReviewsView {
	s := vm.reviews.Snapshot()
	return views.ReviewsView{
		Cards:      vm.reviews.VisibleWindow(),
		Index:      s.Index,
		PageSize:   s.PageSize,
		PageCount:  s.PageCount,
		ActivePage: s.ActivePage,
		Len:        s.Len,
		Running:    s.Running,
	}
}
