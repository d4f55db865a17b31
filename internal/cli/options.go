package cli

import (
	"fmt"

	"github.com/phrazzld/coursedir-api/internal/domain"
	"github.com/phrazzld/coursedir-api/internal/domain/filter"
	"github.com/spf13/cobra"
)

var optionKinds = []string{
	"levels", "fields", "subject-areas", "careers", "courses",
	"college-types", "states", "districts",
}

func newOptionsCmd(opts *globalOptions) *cobra.Command {
	var level, field, state string

	cmd := &cobra.Command{
		Use:       "options <kind>",
		Short:     "List the values accepted by the filter flags",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: optionKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.newSession(cmd)
			if err != nil {
				return err
			}

			var values []string
			var options []filter.Option
			plain := false
			switch args[0] {
			case "levels":
				options = s.svc.LevelOptions()
			case "fields":
				options = s.svc.FieldOptions(domain.Level(level))
			case "subject-areas":
				options = s.svc.SubjectAreaOptions()
			case "careers":
				options = s.svc.CareerOptions()
			case "courses":
				options = s.svc.CourseOptions(domain.Field(field))
			case "college-types":
				options = s.svc.CollegeTypeOptions()
			case "states":
				values, plain = s.svc.StateOptions(), true
			case "districts":
				values, plain = s.svc.DistrictOptions(state), true
			default:
				return fmt.Errorf("unknown option kind %q", args[0])
			}

			if plain {
				if s.json {
					return s.printJSON(values)
				}
				s.renderStrings(values)
				return nil
			}
			if s.json {
				return s.printJSON(options)
			}
			s.renderOptions(options)
			return nil
		},
	}

	cmd.Flags().StringVar(&level, "level", domain.All, "course level, for fields")
	cmd.Flags().StringVar(&field, "field", domain.All, "subject area, for courses")
	cmd.Flags().StringVar(&state, "state", "", "state, for districts")
	return cmd
}
