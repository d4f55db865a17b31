package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/phrazzld/coursedir-api/internal/domain"
	"github.com/phrazzld/coursedir-api/internal/domain/filter"
)

func (s *session) printJSON(v interface{}) error {
	enc := json.NewEncoder(s.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (s *session) println(a ...interface{}) {
	fmt.Fprintln(s.out, a...)
}

func (s *session) printCount(n int, noun string) {
	if n != 1 {
		noun += "s"
	}
	s.println(s.styles.dim.Render(fmt.Sprintf("%d %s", n, noun)))
}

// label returns the display label for value, or value itself.
func label(opts []filter.Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

func (s *session) renderCourses(courses []domain.Course) {
	for _, c := range courses {
		s.println(s.styles.title.Render(c.Name) + " " + s.styles.dim.Render("("+c.ID+")"))
		s.println("  " + courseFacts(c))
	}
	s.printCount(len(courses), "course")
}

func courseFacts(c domain.Course) string {
	facts := []string{
		label(filter.LevelOptions, string(c.Level)),
		label(filter.SubjectAreaOptions, string(c.Field)),
	}
	if c.Duration != "" {
		facts = append(facts, strings.TrimSpace(c.Duration+" "+c.DurationType))
	}
	if c.Qualification != "" {
		facts = append(facts, c.Qualification)
	}
	return strings.Join(facts, " · ")
}

func (s *session) renderCourse(c domain.Course, colleges []domain.College, careers []domain.CareerSummary, region domain.Region) {
	header := lipgloss.JoinVertical(lipgloss.Left,
		s.styles.title.Render(c.Name),
		courseFacts(c),
	)
	if c.Description != "" {
		header = lipgloss.JoinVertical(lipgloss.Left, header, "", c.Description)
	}
	s.println(s.styles.box.Render(header))

	s.println(s.styles.heading.Render("Colleges"))
	s.renderCollegeLines(colleges)

	s.println(s.styles.heading.Render("Careers"))
	for _, career := range careers {
		line := "  " + career.Title + "  " + s.styles.tag.Render(career.Salary.For(region))
		if career.Growth != "" {
			line += "  " + s.styles.dim.Render(career.Growth)
		}
		s.println(line)
	}
}

func (s *session) renderCollegeLines(colleges []domain.College) {
	for _, c := range colleges {
		s.println(fmt.Sprintf("  %s  %s  %s",
			c.Name,
			s.styles.dim.Render(c.Location),
			s.styles.accent.Render(fmt.Sprintf("★ %.1f", c.Rating))))
	}
}

func (s *session) renderColleges(colleges []domain.College) {
	s.renderCollegeLines(colleges)
	s.printCount(len(colleges), "college")
}

func (s *session) renderCareerRows(rows []domain.CareerRow) {
	for _, r := range rows {
		s.println(fmt.Sprintf("%s  %s  %s",
			s.styles.title.Render(r.Career),
			s.styles.dim.Render("via "+r.Course),
			s.styles.tag.Render(r.Salary)))
	}
	s.printCount(len(rows), "career")
}

func (s *session) renderCareer(d domain.CareerDetails, region domain.Region) {
	s.println(s.styles.box.Render(lipgloss.JoinVertical(lipgloss.Left,
		s.styles.title.Render(d.Career),
		d.Description,
	)))

	market := d.JobMarket.For(region)
	s.println(s.styles.heading.Render("Job market (" + string(region) + ")"))
	s.println("  Demand: " + market.Demand)
	s.println(fmt.Sprintf("  Salary: entry %s, mid %s, senior %s",
		market.SalaryRange.Entry, market.SalaryRange.Mid, market.SalaryRange.Senior))
	if len(market.Locations) > 0 {
		s.println("  Locations: " + strings.Join(market.Locations, ", "))
	}
	if len(market.CompaniesHiring) > 0 {
		s.println("  Hiring: " + strings.Join(market.CompaniesHiring, ", "))
	}

	if len(d.Skills) > 0 {
		s.println(s.styles.heading.Render("Skills"))
		for _, skill := range d.Skills {
			s.println("  • " + skill)
		}
	}

	s.println(s.styles.heading.Render("Outlook"))
	s.println("  " + d.FutureOutlook.ShortTerm)
	if d.FutureOutlook.LongTerm != "" {
		s.println("  " + s.styles.dim.Render(d.FutureOutlook.LongTerm))
	}

	if len(d.Courses) > 0 {
		s.println(s.styles.heading.Render("Courses"))
		for _, c := range d.Courses {
			s.println("  " + c.Name + " " + s.styles.dim.Render("("+c.ID+")"))
		}
	}
}

func (s *session) renderNews(items []domain.NewsItem) {
	for _, n := range items {
		s.println(s.styles.title.Render(n.Title))
		s.println("  " + s.styles.dim.Render(n.Date+" · "+n.Source) + "  " + s.styles.tag.Render("#"+n.Tag))
		if n.Snippet != "" {
			s.println("  " + n.Snippet)
		}
	}
	s.printCount(len(items), "news item")
}

func (s *session) renderOptions(opts []filter.Option) {
	for _, o := range opts {
		if o.Value == o.Label {
			s.println(o.Value)
			continue
		}
		s.println(o.Value + "  " + s.styles.dim.Render(o.Label))
	}
}

func (s *session) renderStrings(values []string) {
	for _, v := range values {
		s.println(v)
	}
}
