package render

// Layout selects which hierarchical scene renders a LayoutPayload (§3).
type Layout string

const (
	LayoutSingleView      Layout = "single_view"
	LayoutSprintView      Layout = "sprint_view"
	LayoutUserStoryLayout Layout = "user_story_layout"
)

// Project is the top-level progress item a LayoutPayload always carries.
type Project struct {
	Name       string `json:"name"`
	Percentage int    `json:"percentage"`
}

// UserStory is a single leaf item under a Sprint.
type UserStory struct {
	Title      string `json:"title"`
	Percentage int    `json:"percentage"`
}

// Sprint groups zero or more UserStory items (§3: "a sprint with no user stories is
// legal").
type Sprint struct {
	Name        string      `json:"name"`
	Percentage  int         `json:"percentage"`
	UserStories []UserStory `json:"user_stories"`
}

// LayoutPayload is the coordinator's sole knowledge of the surrounding task hierarchy
// (§3). It is produced by an out-of-scope task service and consumed only by the
// Renderer.
type LayoutPayload struct {
	Layout           Layout   `json:"layout"`
	Project          Project  `json:"project"`
	Sprints          []Sprint `json:"sprints"`
	FocusSprintIndex *int     `json:"focus_sprint_index,omitempty"`
}

// Normalize returns a copy of p with every percentage clamped to 0..=100 and every
// name truncated to maxNameLen, as required by §3's invariants. It is called once at
// the top of every scene renderer so the rest of the rendering code never has to
// re-check bounds.
func (p LayoutPayload) Normalize(maxNameLen int) LayoutPayload {
	out := p
	out.Project.Name = truncate(p.Project.Name, maxNameLen)
	out.Project.Percentage = ClampPercentage(float64(p.Project.Percentage))

	out.Sprints = make([]Sprint, len(p.Sprints))
	for i, s := range p.Sprints {
		ns := Sprint{
			Name:       truncate(s.Name, maxNameLen),
			Percentage: ClampPercentage(float64(s.Percentage)),
		}
		ns.UserStories = make([]UserStory, len(s.UserStories))
		for j, us := range s.UserStories {
			ns.UserStories[j] = UserStory{
				Title:      truncate(us.Title, maxNameLen),
				Percentage: ClampPercentage(float64(us.Percentage)),
			}
		}
		out.Sprints[i] = ns
	}
	return out
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// completedCount returns how many items in items have reached 100%.
func completedCount[T any](items []T, pct func(T) int) (completed, total int) {
	total = len(items)
	for _, it := range items {
		if pct(it) >= 100 {
			completed++
		}
	}
	return completed, total
}
