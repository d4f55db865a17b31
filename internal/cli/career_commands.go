package cli

import (
	"strings"

	"github.com/phrazzld/coursedir-api/internal/domain"
	"github.com/spf13/cobra"
)

func newCareersCmd(opts *globalOptions) *cobra.Command {
	flags := &criteriaFlags{}

	cmd := &cobra.Command{
		Use:   "careers",
		Short: "List careers with the courses that lead to them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.newSession(cmd)
			if err != nil {
				return err
			}

			rows := s.svc.FilterCareers(cmd.Context(), flags.criteria())
			if s.json {
				return s.printJSON(rows)
			}
			s.renderCareerRows(rows)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.search, "career", "c", "", "exact career name")
	cmd.Flags().StringVar(&flags.field, "field", domain.All, "subject area of the course")
	cmd.Flags().StringVar(&flags.region, "region", string(domain.RegionGlobal), "salary region (india, global)")
	return cmd
}

func newCareerCmd(opts *globalOptions) *cobra.Command {
	var region string

	cmd := &cobra.Command{
		Use:   "career <name>",
		Short: "Show the full description of a career",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.newSession(cmd)
			if err != nil {
				return err
			}

			details := s.svc.GetCareerDetails(cmd.Context(), strings.Join(args, " "))
			if s.json {
				return s.printJSON(details)
			}
			normalized := s.svc.NormalizeCriteria(domain.Criteria{Region: domain.Region(region)})
			s.renderCareer(details, normalized.Region)
			return nil
		},
	}

	cmd.Flags().StringVar(&region, "region", string(domain.RegionGlobal), "job market region (india, global)")
	return cmd
}

func newNewsCmd(opts *globalOptions) *cobra.Command {
	var tag string

	cmd := &cobra.Command{
		Use:   "news",
		Short: "Show career news",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.newSession(cmd)
			if err != nil {
				return err
			}

			items := s.svc.FilterNews(cmd.Context(), tag)
			if s.json {
				return s.printJSON(items)
			}
			s.renderNews(items)
			return nil
		},
	}

	cmd.Flags().StringVar(&tag, "tag", domain.All, "news tag")
	return cmd
}
