package ipc

import "github.com/helixml/led-coordinator/internal/render"

func (p LayoutPayload) toRender() render.LayoutPayload {
	out := render.LayoutPayload{
		Layout:           render.Layout(p.Layout),
		Project:          render.Project{Name: p.Project.Name, Percentage: p.Project.Percentage},
		FocusSprintIndex: p.FocusSprintIndex,
	}
	out.Sprints = make([]render.Sprint, len(p.Sprints))
	for i, s := range p.Sprints {
		rs := render.Sprint{Name: s.Name, Percentage: s.Percentage}
		rs.UserStories = make([]render.UserStory, len(s.UserStories))
		for j, us := range s.UserStories {
			rs.UserStories[j] = render.UserStory{Title: us.Title, Percentage: us.Percentage}
		}
		out.Sprints[i] = rs
	}
	return out
}
