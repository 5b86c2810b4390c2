package course

// LessonField names a scalar lesson field editable through UpdateLessonField.
type LessonField string

const (
	FieldTitle    LessonField = "title"
	FieldVideoURL LessonField = "videoUrl"
)

// Normalize fills missing chapter and lesson ids and nil slices.
func (c Course) Normalize(newID IDFunc) Course {
	out := c.Clone()
	if out.ID == "" {
		out.ID = newID()
	}
	if out.Chapters == nil {
		out.Chapters = []Chapter{}
	}
	for i := range out.Chapters {
		ch := &out.Chapters[i]
		if ch.ID == "" {
			ch.ID = newID()
		}
		if ch.Lessons == nil {
			ch.Lessons = []Lesson{}
		}
		for j := range ch.Lessons {
			if ch.Lessons[j].ID == "" {
				ch.Lessons[j].ID = newID()
			}
		}
	}
	return out
}

// WithTitle returns c with the title replaced.
func (c Course) WithTitle(title string) Course {
	out := c.Clone()
	out.Title = title
	return out
}

// WithDescription returns c with the description replaced.
func (c Course) WithDescription(desc string) Course {
	out := c.Clone()
	out.Description = desc
	return out
}

// WithChapter returns c with an empty chapter appended.
func (c Course) WithChapter(id string) Course {
	out := c.Clone()
	out.Chapters = append(out.Chapters, Chapter{ID: id, Lessons: []Lesson{}})
	return out
}

// WithoutChapter returns c without the chapter and the lessons that went with it.
// Unknown ids return an unchanged copy and no lessons.
func (c Course) WithoutChapter(chapterID string) (Course, []Lesson) {
	out := c.Clone()
	var removed []Lesson
	kept := make([]Chapter, 0, len(out.Chapters))
	for _, ch := range out.Chapters {
		if ch.ID == chapterID {
			removed = append(removed, ch.Lessons...)
			continue
		}
		kept = append(kept, ch)
	}
	out.Chapters = kept
	return out, removed
}

// WithChapterTitle returns c with one chapter's title replaced.
func (c Course) WithChapterTitle(chapterID, title string) Course {
	return c.mapChapter(chapterID, func(ch Chapter) Chapter {
		ch.Title = title
		return ch
	})
}

// WithLesson returns c with an empty lesson appended to the chapter.
func (c Course) WithLesson(chapterID, lessonID string) Course {
	return c.mapChapter(chapterID, func(ch Chapter) Chapter {
		ch.Lessons = append(ch.Lessons, Lesson{ID: lessonID})
		return ch
	})
}

// WithoutLesson returns c without the lesson, plus the removed lesson if it existed.
func (c Course) WithoutLesson(chapterID, lessonID string) (Course, *Lesson) {
	var removed *Lesson
	out := c.mapChapter(chapterID, func(ch Chapter) Chapter {
		kept := make([]Lesson, 0, len(ch.Lessons))
		for _, l := range ch.Lessons {
			if l.ID == lessonID {
				removed = &l
				continue
			}
			kept = append(kept, l)
		}
		ch.Lessons = kept
		return ch
	})
	return out, removed
}

// WithLessonField returns c with a scalar lesson field replaced.
// URL edits are ignored while a picked file is the source; unknown fields are ignored.
func (c Course) WithLessonField(chapterID, lessonID string, field LessonField, value string) Course {
	return c.mapLesson(chapterID, lessonID, func(l Lesson) Lesson {
		switch field {
		case FieldTitle:
			l.Title = value
		case FieldVideoURL:
			if l.VideoFile == nil {
				l.VideoURL = value
			}
		}
		return l
	})
}

// WithLessonUpdate returns c with fn applied to one lesson.
func (c Course) WithLessonUpdate(chapterID, lessonID string, fn func(Lesson) Lesson) Course {
	return c.mapLesson(chapterID, lessonID, fn)
}

func (c Course) mapChapter(chapterID string, fn func(Chapter) Chapter) Course {
	out := c.Clone()
	for i, ch := range out.Chapters {
		if ch.ID == chapterID {
			out.Chapters[i] = fn(ch)
		}
	}
	return out
}

func (c Course) mapLesson(chapterID, lessonID string, fn func(Lesson) Lesson) Course {
	return c.mapChapter(chapterID, func(ch Chapter) Chapter {
		for i, l := range ch.Lessons {
			if l.ID == lessonID {
				ch.Lessons[i] = fn(l)
			}
		}
		return ch
	})
}

// findLesson locates a lesson by chapter and lesson id.
func (c Course) findLesson(chapterID, lessonID string) (Lesson, bool) {
	ch, ok := c.Chapter(chapterID)
	if !ok {
		return Lesson{}, false
	}
	return ch.Lesson(lessonID)
}
