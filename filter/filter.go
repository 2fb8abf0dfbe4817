// Package filter provides expression-based client-side filtering of Pexels
// search results. Expressions use the expr language and evaluate to a
// boolean per media item:
//
//	width >= 1920 && height >= 1080
//	photographer == "Ada" || contains(alt, "mountain")
//	duration < 60 && hasTag("ocean")
package filter

import (
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"pexfetch/pexels"
)

// Filter is a compiled filter expression. A Filter is immutable and safe
// for concurrent use.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile compiles an expression into an executable filter.
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(), // media fields are bound at evaluation time
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	return &Filter{expression: expression, program: program}, nil
}

// Expression returns the original expression.
func (f *Filter) Expression() string {
	return f.expression
}

// MatchPhoto evaluates the filter against a photo.
func (f *Filter) MatchPhoto(photo pexels.Photo) (bool, error) {
	env := helperFunctions()
	env["id"] = photo.ID
	env["width"] = photo.Width
	env["height"] = photo.Height
	env["photographer"] = photo.Photographer
	env["avg_color"] = photo.AvgColor
	env["alt"] = photo.Alt
	env["liked"] = photo.Liked
	env["hasTag"] = func(string) bool { return false } // photos carry no tags

	return f.run(env, photo.Alt)
}

// MatchVideo evaluates the filter against a video.
func (f *Filter) MatchVideo(video pexels.Video) (bool, error) {
	env := helperFunctions()
	env["id"] = video.ID
	env["width"] = video.Width
	env["height"] = video.Height
	env["duration"] = video.Duration
	env["user"] = video.User.Name
	env["tags"] = video.Tags
	env["hasTag"] = func(tag string) bool {
		for _, t := range video.Tags {
			if strings.EqualFold(t, tag) {
				return true
			}
		}
		return false
	}

	return f.run(env, video.URL)
}

// Photos returns the photos matching the filter.
func (f *Filter) Photos(photos []pexels.Photo) ([]pexels.Photo, error) {
	var matched []pexels.Photo
	for _, p := range photos {
		ok, err := f.MatchPhoto(p)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// Videos returns the videos matching the filter.
func (f *Filter) Videos(videos []pexels.Video) ([]pexels.Video, error) {
	var matched []pexels.Video
	for _, v := range videos {
		ok, err := f.MatchVideo(v)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, v)
		}
	}
	return matched, nil
}

func (f *Filter) run(env map[string]any, subject string) (bool, error) {
	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Subject:    subject,
			Reason:     "failed to evaluate expression",
			Err:        err,
		}
	}

	// AsBool at compile time guarantees a bool result.
	return result.(bool), nil
}

// helperFunctions returns the helpers available inside expressions.
func helperFunctions() map[string]any {
	env := make(map[string]any, 8)
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	return env
}
