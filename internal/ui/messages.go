package ui

import (
	"hamgaman/internal/course"
	"hamgaman/internal/roster"
)

// DismissModalMsg closes the top overlay.
type DismissModalMsg struct{}

// ToggleSidebarMsg collapses or expands the desktop panel (SPC t).
type ToggleSidebarMsg struct{}

// OpenDrawerMsg opens the mobile drawer (SPC o).
type OpenDrawerMsg struct{}

// LogoutMsg runs the sidebar's logout callback (SPC l).
type LogoutMsg struct{}

// FocusNextMsg rotates focus between the sidebar and the content.
type FocusNextMsg struct{}

// FocusPrevMsg rotates focus the other way.
type FocusPrevMsg struct{}

// ConfirmDeleteUserMsg asks for confirmation before a user row is removed.
type ConfirmDeleteUserMsg struct {
	User roster.User
}

// DeleteUserMsg removes a user row after confirmation.
type DeleteUserMsg struct {
	ID string
}

// OpenEditorMsg opens the course editor. An empty CourseID starts a new course.
type OpenEditorMsg struct {
	CourseID string
}

// CloseEditorMsg leaves the editor and tears it down.
type CloseEditorMsg struct{}

// CourseSavedMsg carries a validated course to be stored.
type CourseSavedMsg struct {
	Course course.Course
}

// PickVideoFileMsg opens the file picker for one lesson.
type PickVideoFileMsg struct {
	ChapterID string
	LessonID  string
}

// VideoFilePickedMsg is sent when the file picker returns a file.
type VideoFilePickedMsg struct {
	ChapterID string
	LessonID  string
	File      course.VideoFile
}

// PlaybackEndedMsg is sent when a player session exits.
type PlaybackEndedMsg struct {
	Source string
}

// QuitMsg ends the program after tearing down the editor and playback.
type QuitMsg struct{}

// PlayLessonMsg plays the lesson selected on the learner page (SPC p p).
type PlayLessonMsg struct{}

// StopPlaybackMsg stops playback (SPC p s).
type StopPlaybackMsg struct{}
