package alertengine

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"obsengine/metricstore"
	"obsengine/models"
)

// conditionSchema gates rule conditions at configuration time. A condition
// that fails here is a ConfigurationError and the rule never reaches
// evaluation with a malformed expression.
const conditionSchema = `{
	"$schema": "http://json-schema.org/draft-04/schema#",
	"$ref": "#/definitions/condition",
	"definitions": {
		"condition": {
			"type": "object",
			"required": ["type"],
			"properties": {
				"type": {"enum": ["threshold", "anomaly", "and", "or", "not"]},
				"metric": {"type": "string", "minLength": 1},
				"operator": {"enum": [">", ">=", "<", "<="]},
				"threshold": {"type": "number"},
				"deviation": {"type": "number", "minimum": 0},
				"baseline_secs": {"type": "integer", "minimum": 1},
				"operands": {
					"type": "array",
					"minItems": 1,
					"items": {"$ref": "#/definitions/condition"}
				},
				"operand": {"$ref": "#/definitions/condition"}
			}
		}
	}
}`

// EvalContext is a snapshot-style view of the inputs an expression needs.
// Window is the span every sample must satisfy the condition over; zero
// means only the latest sample is examined.
type EvalContext struct {
	Query    metricstore.QueryFunc
	Matchers []models.LabelMatcher
	Now      time.Time
	Window   time.Duration
}

type Expr interface {
	Evaluate(ctx *EvalContext) (bool, error)
}

type ThresholdExpr struct {
	Metric    string
	Operator  string
	Threshold float64
}

// Evaluate follows the breach-window contract: the samples must cover the
// whole window (oldest predates its start) and every one of them must
// breach, so a single noisy sample never fires a rule.
func (t *ThresholdExpr) Evaluate(ctx *EvalContext) (bool, error) {
	samples, err := windowSamples(ctx, t.Metric)
	if err != nil {
		return false, err
	}
	if samples == nil {
		return false, nil
	}
	for _, v := range samples {
		if !breaches(v, t.Operator, t.Threshold) {
			return false, nil
		}
	}
	return true, nil
}

func breaches(value float64, operator string, threshold float64) bool {
	switch operator {
	case ">":
		return value > threshold
	case ">=":
		return value >= threshold
	case "<":
		return value < threshold
	case "<=":
		return value <= threshold
	}
	return false
}

type AnomalyExpr struct {
	Metric       string
	Deviation    float64
	BaselineSecs int
}

// Evaluate compares window samples against a rolling baseline: every sample
// must deviate by at least Deviation standard deviations from the baseline
// mean. A flat or empty baseline never fires.
func (a *AnomalyExpr) Evaluate(ctx *EvalContext) (bool, error) {
	windowStart := ctx.Now.Add(-ctx.Window)
	baselineStart := windowStart.Add(-time.Duration(a.BaselineSecs) * time.Second)
	baselinePoints, err := ctx.Query(a.Metric, ctx.Matchers, baselineStart.UnixNano(), windowStart.UnixNano()-1)
	if err != nil {
		return false, err
	}
	mean, stddev := meanStddev(baselinePoints)
	if stddev == 0 {
		return false, nil
	}

	samples, err := windowSamples(ctx, a.Metric)
	if err != nil {
		return false, err
	}
	if samples == nil {
		return false, nil
	}
	for _, v := range samples {
		if math.Abs(v-mean)/stddev < a.Deviation {
			return false, nil
		}
	}
	return true, nil
}

func meanStddev(points []*models.MetricPoint) (float64, float64) {
	if len(points) == 0 {
		return 0, 0
	}
	var sum float64
	for _, p := range points {
		sum += p.Value
	}
	mean := sum / float64(len(points))
	var sq float64
	for _, p := range points {
		sq += (p.Value - mean) * (p.Value - mean)
	}
	return mean, math.Sqrt(sq / float64(len(points)))
}

type AndExpr struct {
	Operands []Expr
}

func (a *AndExpr) Evaluate(ctx *EvalContext) (bool, error) {
	for _, op := range a.Operands {
		ok, err := op.Evaluate(ctx)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

type OrExpr struct {
	Operands []Expr
}

func (o *OrExpr) Evaluate(ctx *EvalContext) (bool, error) {
	for _, op := range o.Operands {
		ok, err := op.Evaluate(ctx)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

type NotExpr struct {
	Operand Expr
}

func (n *NotExpr) Evaluate(ctx *EvalContext) (bool, error) {
	ok, err := n.Operand.Evaluate(ctx)
	if err != nil {
		return false, err
	}
	return !ok, nil
}

// windowSamples returns the values inside [now-window, now], or nil when
// the series does not cover the window yet. It queries twice the window so
// coverage is decidable, mirroring the evaluation contract above.
func windowSamples(ctx *EvalContext, metric string) ([]float64, error) {
	windowStart := ctx.Now.Add(-ctx.Window)
	queryStart := ctx.Now.Add(-2*ctx.Window - time.Minute)
	points, err := ctx.Query(metric, ctx.Matchers, queryStart.UnixNano(), ctx.Now.UnixNano())
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		return nil, nil
	}
	if ctx.Window > 0 && points[0].Timestamp >= windowStart.UnixNano() {
		// not enough history to decide the full window
		return nil, nil
	}

	samples := []float64{}
	for _, p := range points {
		if p.Timestamp >= windowStart.UnixNano() {
			samples = append(samples, p.Value)
		}
	}
	if len(samples) == 0 {
		// nothing inside the window; fall back to the latest known sample
		samples = append(samples, points[len(points)-1].Value)
	}
	if ctx.Window == 0 {
		samples = samples[len(samples)-1:]
	}
	return samples, nil
}

type rawCondition struct {
	Type         string            `json:"type"`
	Metric       string            `json:"metric"`
	Operator     string            `json:"operator"`
	Threshold    *float64          `json:"threshold"`
	Deviation    *float64          `json:"deviation"`
	BaselineSecs int               `json:"baseline_secs"`
	Operands     []json.RawMessage `json:"operands"`
	Operand      json.RawMessage   `json:"operand"`
}

// ParseCondition validates and compiles a rule condition. All failures are
// ConfigurationErrors so malformed expressions are rejected when the rule
// is configured, never during an evaluation cycle.
func ParseCondition(ruleId string, condition json.RawMessage) (Expr, error) {
	if len(condition) == 0 {
		return nil, &models.ConfigurationError{RuleId: ruleId, Reason: "empty condition"}
	}

	result, err := gojsonschema.Validate(gojsonschema.NewStringLoader(conditionSchema), gojsonschema.NewBytesLoader(condition))
	if err != nil {
		return nil, &models.ConfigurationError{RuleId: ruleId, Reason: err.Error()}
	}
	if !result.Valid() {
		reasons := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			reasons = append(reasons, e.String())
		}
		return nil, &models.ConfigurationError{RuleId: ruleId, Reason: strings.Join(reasons, "; ")}
	}
	return parseNode(ruleId, condition)
}

func parseNode(ruleId string, raw json.RawMessage) (Expr, error) {
	var node rawCondition
	if err := json.Unmarshal(raw, &node); err != nil {
		return nil, &models.ConfigurationError{RuleId: ruleId, Reason: err.Error()}
	}

	switch node.Type {
	case "threshold":
		if node.Metric == "" || node.Operator == "" || node.Threshold == nil {
			return nil, &models.ConfigurationError{RuleId: ruleId, Reason: "threshold condition requires metric, operator and threshold"}
		}
		return &ThresholdExpr{Metric: node.Metric, Operator: node.Operator, Threshold: *node.Threshold}, nil
	case "anomaly":
		if node.Metric == "" || node.Deviation == nil || node.BaselineSecs <= 0 {
			return nil, &models.ConfigurationError{RuleId: ruleId, Reason: "anomaly condition requires metric, deviation and baseline_secs"}
		}
		return &AnomalyExpr{Metric: node.Metric, Deviation: *node.Deviation, BaselineSecs: node.BaselineSecs}, nil
	case "and", "or":
		if len(node.Operands) == 0 {
			return nil, &models.ConfigurationError{RuleId: ruleId, Reason: node.Type + " condition requires operands"}
		}
		operands := make([]Expr, 0, len(node.Operands))
		for _, op := range node.Operands {
			expr, err := parseNode(ruleId, op)
			if err != nil {
				return nil, err
			}
			operands = append(operands, expr)
		}
		if node.Type == "and" {
			return &AndExpr{Operands: operands}, nil
		}
		return &OrExpr{Operands: operands}, nil
	case "not":
		if len(node.Operand) == 0 {
			return nil, &models.ConfigurationError{RuleId: ruleId, Reason: "not condition requires operand"}
		}
		operand, err := parseNode(ruleId, node.Operand)
		if err != nil {
			return nil, err
		}
		return &NotExpr{Operand: operand}, nil
	}
	return nil, &models.ConfigurationError{RuleId: ruleId, Reason: "unknown condition type " + node.Type}
}
