// Package agent drives one browser-automation task to completion through a
// tool-calling model loop: the model is handed a natural-language task and
// the browser tool set, tool calls are executed between turns, and a model
// turn with no tool calls is the final answer. A step budget bounds the run;
// exhausting it returns whatever text the model last produced, since a
// partial extraction is still worth normalizing.
package agent
