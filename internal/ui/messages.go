package ui

import (
	"time"

	"cishsite/internal/domain"
	"cishsite/internal/ui/services/navigation"
)

// navigateMsg asks the root model to switch pages
type navigateMsg struct {
	event navigation.Event
}

// scrollToMsg asks the root model to focus a section by id, switching to Home
// first when the section lives there
type scrollToMsg struct {
	section string
}

// searchMsg replaces the search text of a section
type searchMsg struct {
	section string
	text    string
}

// openArticleMsg asks the root model to show an article in the reader
type openArticleMsg struct {
	article domain.Article
}

// openInstituteMsg asks the root model to show the institute dialog
type openInstituteMsg struct {
	institute domain.Institute
}

// readerMsg contains the result of the article pager
type readerMsg struct {
	articleID int
	err       error
}

// animTickMsg drives section animations. Only the ticker that armed it with
// the same tag accepts it.
type animTickMsg struct {
	id   int
	tag  int
	time time.Time
}

// clearStatusMsg clears the status line
type clearStatusMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
