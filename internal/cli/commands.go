package cli

import (
	"fmt"
	"strings"

	"github.com/phrazzld/coursedir-api/internal/domain"
	"github.com/spf13/cobra"
)

// criteriaFlags binds the filter dimensions a command exposes.
type criteriaFlags struct {
	search   string
	level    string
	field    string
	state    string
	district string
	status   string
	region   string
}

func (f *criteriaFlags) criteria() domain.Criteria {
	return domain.Criteria{
		SearchTerm:    strings.TrimSpace(f.search),
		Level:         domain.Level(f.level),
		Field:         domain.Field(f.field),
		State:         f.state,
		District:      f.district,
		CollegeStatus: domain.CollegeStatus(f.status),
		Region:        domain.Region(f.region),
	}
}

func newCoursesCmd(opts *globalOptions) *cobra.Command {
	flags := &criteriaFlags{}

	cmd := &cobra.Command{
		Use:   "courses",
		Short: "List courses by search term, level and field",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.newSession(cmd)
			if err != nil {
				return err
			}

			courses := s.svc.FilterCourses(cmd.Context(), flags.criteria())
			if s.json {
				return s.printJSON(courses)
			}
			s.renderCourses(courses)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.search, "query", "q", "", "match course name or description")
	cmd.Flags().StringVar(&flags.level, "level", domain.All, "course level")
	cmd.Flags().StringVar(&flags.field, "field", domain.All, "subject area")
	return cmd
}

func newCourseCmd(opts *globalOptions) *cobra.Command {
	var region string

	cmd := &cobra.Command{
		Use:   "course <id>",
		Short: "Show a course with its colleges and careers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.newSession(cmd)
			if err != nil {
				return err
			}

			course, err := s.svc.GetCourse(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			colleges := s.svc.GetCollegesByIDs(cmd.Context(), course.CollegeIDs())
			careers := s.svc.GetCareersForCourse(cmd.Context(), course.ID)

			if s.json {
				return s.printJSON(struct {
					Course   *domain.Course         `json:"course"`
					Colleges []domain.College       `json:"colleges"`
					Careers  []domain.CareerSummary `json:"careers"`
				}{course, colleges, careers})
			}
			normalized := s.svc.NormalizeCriteria(domain.Criteria{Region: domain.Region(region)})
			s.renderCourse(*course, colleges, careers, normalized.Region)
			return nil
		},
	}

	cmd.Flags().StringVar(&region, "region", string(domain.RegionGlobal), "salary region (india, global)")
	return cmd
}

func newSuggestCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <term>",
		Short: "Suggest course names for a partial search term",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.newSession(cmd)
			if err != nil {
				return err
			}

			suggestions := s.svc.CourseSuggestions(cmd.Context(), strings.Join(args, " "))
			if s.json {
				return s.printJSON(suggestions)
			}
			s.renderStrings(suggestions)
			return nil
		},
	}
}

func newCollegesCmd(opts *globalOptions) *cobra.Command {
	flags := &criteriaFlags{}

	cmd := &cobra.Command{
		Use:   "colleges",
		Short: "List colleges by name, field, status and location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.newSession(cmd)
			if err != nil {
				return err
			}

			criteria := flags.criteria()
			if normalized := s.svc.NormalizeCriteria(criteria); !domain.IsAll(flags.district) && normalized.District == domain.All {
				s.log.Warn("district ignored: it must belong to the selected state",
					"state", flags.state,
					"district", flags.district)
			}

			colleges := s.svc.FilterColleges(cmd.Context(), criteria)
			if s.json {
				return s.printJSON(colleges)
			}
			s.renderColleges(colleges)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.search, "query", "q", "", "match college name")
	cmd.Flags().StringVar(&flags.field, "field", domain.All, "only colleges offering a course in this field")
	cmd.Flags().StringVar(&flags.status, "status", domain.All,
		fmt.Sprintf("college status (%s)", joinStatuses()))
	cmd.Flags().StringVar(&flags.state, "state", domain.All, "state")
	cmd.Flags().StringVar(&flags.district, "district", domain.All, "district within the state")
	return cmd
}

func joinStatuses() string {
	names := make([]string, 0, len(domain.CollegeStatuses))
	for _, s := range domain.CollegeStatuses {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}
