package course

import "encoding/json"

// lessonJSON is the exported shape of a Lesson. It has no preview field:
// preview handles are local to one editor session and never leave it.
type lessonJSON struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	VideoURL  string     `json:"videoUrl"`
	VideoFile *VideoFile `json:"videoFile,omitempty"`
}

// MarshalJSON implements json.Marshaler and drops the preview handle.
func (l Lesson) MarshalJSON() ([]byte, error) {
	return json.Marshal(lessonJSON{
		ID:        l.ID,
		Title:     l.Title,
		VideoURL:  l.VideoURL,
		VideoFile: l.VideoFile,
	})
}

// UnmarshalJSON implements json.Unmarshaler. Decoded lessons never carry a preview.
func (l *Lesson) UnmarshalJSON(data []byte) error {
	var v lessonJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*l = Lesson{ID: v.ID, Title: v.Title, VideoURL: v.VideoURL, VideoFile: v.VideoFile}
	return nil
}
