package controller

// Driver binds a Controller to an input Source so it can be registered with
// a loop that only knows about time.
type Driver struct {
	Controller *Controller
	Source     Source
}

func Bind(c *Controller, src Source) *Driver {
	return &Driver{Controller: c, Source: src}
}

func (d *Driver) Update(now, dt float64) {
	if d == nil || d.Controller == nil {
		return
	}
	var in Frame
	if d.Source != nil {
		in = d.Source.Poll(now)
	}
	d.Controller.Update(now, dt, in)
}

func (d *Driver) FixedUpdate(now float64) {
	if d == nil {
		return
	}
	d.Controller.FixedUpdate(now)
}

func (d *Driver) LateUpdate() {
	if d == nil {
		return
	}
	d.Controller.LateUpdate()
}
