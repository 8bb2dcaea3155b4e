// Package request decodes maze requests from JSON documents and HCL batch
// files and converts them into engine.Request values.
//
// JSON accepts a single object or an array of objects:
//
//	{"maze_type": "Orthogonal", "width": 12, "height": 12,
//	 "algorithm": "RecursiveBacktracker", "start": {"x": 0, "y": 0},
//	 "goal": {"x": 11, "y": 11}, "seed": 42, "capture_steps": false}
//
// HCL files hold one labelled block per maze:
//
//	maze "lobby" {
//	  maze_type = "Sigma"
//	  width     = 20
//	  height    = 15
//	  algorithm = "Wilsons"
//	  braid     = 0.25
//	  start {
//	    x = 0
//	    y = 0
//	  }
//	}
//
// Syntax and shape problems match ErrDecode; unknown names and bad values
// match grid.ErrValidation.
package request
