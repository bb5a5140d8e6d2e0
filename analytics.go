package main

import (
	"errors"
	"image"
	"time"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"
	"gioui.org/x/explorer"
	"git.sr.ht/~gioverse/skel/stream"
	"git.sr.ht/~whereswaldon/folio/backend"
	"git.sr.ht/~whereswaldon/folio/chart"
	"git.sr.ht/~whereswaldon/folio/format"
	"git.sr.ht/~whereswaldon/folio/model"
	"github.com/rs/zerolog/log"
)

// Analytics is the portfolio overview screen.
type Analytics struct {
	ws        backend.WindowState
	expl      *explorer.Explorer
	portfolio *model.Portfolio
	chart     *ChartWidget

	historyStream *stream.Stream[[]chart.Point]
	styleStream   *stream.Stream[chart.Style]
	statusStream  *stream.Stream[backend.Status]
	style         chart.Style
	status        backend.Status

	timeframe   widget.Enum
	currencyBtn widget.Clickable
	openBtn     widget.Clickable
	resetBtn    widget.Clickable
	page        widget.List
	assetList   widget.List
	txTable     component.GridState
}

func NewAnalytics(ws backend.WindowState, expl *explorer.Explorer, tf chart.Timeframe) *Analytics {
	p := model.New(ws.History.Current())
	p.SelectTimeframe(tf)
	p.OnSelectionChanged = func(s chart.Selection) {
		log.Debug().Int("index", s.Index).Bool("active", s.Active).Msg("selection changed")
	}
	return &Analytics{
		ws:            ws,
		expl:          expl,
		portfolio:     p,
		chart:         NewChartWidget(p),
		historyStream: stream.New(ws.Controller, ws.History.History),
		styleStream:   stream.New(ws.Controller, ws.Styles.Stream),
		statusStream:  stream.New(ws.Controller, ws.History.Status),
		style:         ws.Styles.Current(),
		timeframe:     widget.Enum{Value: tf.String()},
		page:          widget.List{List: layout.List{Axis: layout.Vertical}},
		assetList:     widget.List{List: layout.List{Axis: layout.Horizontal}},
	}
}

func (a *Analytics) Update(gtx C) {
	if history, ok := a.historyStream.ReadNew(gtx); ok {
		a.portfolio.SetHistory(history)
	}
	a.styleStream.ReadInto(gtx, &a.style, a.ws.Styles.Current())
	a.statusStream.ReadInto(gtx, &a.status, backend.Status{Source: backend.DemoSource})
	if a.timeframe.Update(gtx) {
		tf, err := chart.ParseTimeframe(a.timeframe.Value)
		if err != nil {
			log.Warn().Err(err).Msg("ignoring timeframe")
		} else {
			a.portfolio.SelectTimeframe(tf)
		}
	}
	if a.currencyBtn.Clicked(gtx) {
		a.portfolio.ToggleCurrency()
	}
	if a.openBtn.Clicked(gtx) {
		go a.importFile()
	}
	if a.resetBtn.Clicked(gtx) {
		a.ws.History.Reset(time.Now())
	}
}

// importFile asks the user for a history CSV. It blocks until the chooser
// closes, so it must not run on the UI goroutine.
func (a *Analytics) importFile() {
	file, err := a.expl.ChooseFile(".csv")
	if errors.Is(err, explorer.ErrUserDecline) {
		return
	} else if err != nil {
		log.Warn().Err(err).Msg("failed browsing for file")
		return
	}
	defer file.Close()
	if err := a.ws.History.Import(file); err != nil {
		log.Warn().Err(err).Msg("keeping previous history")
	}
}

func (a *Analytics) Layout(gtx C, th *material.Theme) D {
	a.Update(gtx)
	sections := []layout.Widget{
		func(gtx C) D { return a.layoutHeader(gtx, th) },
		func(gtx C) D { return a.layoutTimeframes(gtx, th) },
		func(gtx C) D {
			gtx.Constraints.Min.Y = gtx.Dp(220)
			gtx.Constraints.Max.Y = gtx.Constraints.Min.Y
			return a.chart.Layout(gtx, th, a.style)
		},
		func(gtx C) D { return a.layoutSource(gtx, th) },
		func(gtx C) D { return heading(th, "Assets").Layout(gtx) },
		func(gtx C) D { return a.layoutAssets(gtx, th) },
		func(gtx C) D { return heading(th, "Transactions").Layout(gtx) },
		func(gtx C) D { return a.layoutTransactions(gtx, th) },
	}
	return material.List(th, &a.page).Layout(gtx, len(sections), func(gtx C, index int) D {
		return layout.Inset{Left: 16, Right: 16, Top: 8, Bottom: 8}.Layout(gtx, sections[index])
	})
}

func heading(th *material.Theme, s string) material.LabelStyle {
	l := material.H6(th, s)
	l.Font.Weight = font.Bold
	return l
}

func (a *Analytics) layoutHeader(gtx C, th *material.Theme) D {
	mode := a.portfolio.Currency()
	value, _ := a.portfolio.DisplayValue()
	diff, pct := a.portfolio.Change()
	subtitle := "Portfolio value"
	if pt, ok := a.portfolio.SelectedPoint(); ok {
		subtitle = format.LongDate(pt.Timestamp)
	}
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Flexed(1, func(gtx C) D {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(func(gtx C) D {
					l := material.Body2(th, subtitle)
					l.Color = secondary
					return l.Layout(gtx)
				}),
				layout.Rigid(material.H4(th, a.portfolio.Format.Total(value, mode)).Layout),
				layout.Rigid(func(gtx C) D {
					l := material.Body2(th, a.portfolio.Format.Currency(diff, mode, 2)+"  "+format.Percent(pct))
					l.Color = changeColor(a.style, diff >= 0)
					return l.Layout(gtx)
				}),
			)
		}),
		layout.Rigid(func(gtx C) D {
			btn := material.Button(th, &a.currencyBtn, mode.Symbol()+" "+mode.Code())
			btn.Background = surface
			btn.CornerRadius = unit.Dp(16)
			return btn.Layout(gtx)
		}),
	)
}

func (a *Analytics) layoutTimeframes(gtx C, th *material.Theme) D {
	tfs := chart.Timeframes()
	children := make([]layout.FlexChild, len(tfs))
	for i, tf := range tfs {
		children[i] = layout.Flexed(1, Tab(th, &a.timeframe, tf.String(), tf.String(), nil).Layout)
	}
	return layout.Flex{}.Layout(gtx, children...)
}

func (a *Analytics) layoutSource(gtx C, th *material.Theme) D {
	return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
		layout.Flexed(1, func(gtx C) D {
			l := material.Caption(th, "Showing "+a.status.Source)
			l.Color = secondary
			if a.status.Err != nil {
				l.Text = a.status.Err.Error()
				l.Color = a.style.Falling.NRGBA()
			}
			return l.Layout(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			return material.Button(th, &a.openBtn, "Open history").Layout(gtx)
		}),
		layout.Rigid(layout.Spacer{Width: 8}.Layout),
		layout.Rigid(func(gtx C) D {
			if a.status.Source == backend.DemoSource {
				gtx = gtx.Disabled()
			}
			btn := material.Button(th, &a.resetBtn, "Reset")
			btn.Background = surface
			return btn.Layout(gtx)
		}),
	)
}

func (a *Analytics) layoutAssets(gtx C, th *material.Theme) D {
	assets := a.ws.Mock.Assets()
	return material.List(th, &a.assetList).Layout(gtx, len(assets), func(gtx C, index int) D {
		asset := assets[index]
		return layout.Inset{Right: 12}.Layout(gtx, func(gtx C) D {
			return layout.Background{}.Layout(gtx, func(gtx C) D {
				paint.FillShape(gtx.Ops, surface, clip.UniformRRect(image.Rectangle{Max: gtx.Constraints.Min}, gtx.Dp(12)).Op(gtx.Ops))
				return D{Size: gtx.Constraints.Min}
			}, func(gtx C) D {
				gtx.Constraints.Min.X = gtx.Dp(180)
				return layout.UniformInset(12).Layout(gtx, func(gtx C) D {
					return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
						layout.Rigid(func(gtx C) D {
							l := material.Body2(th, asset.Name)
							l.Color = secondary
							return l.Layout(gtx)
						}),
						layout.Rigid(material.Subtitle1(th, a.portfolio.Format.Currency(asset.Price, format.Primary, 2)).Layout),
						layout.Rigid(func(gtx C) D {
							l := material.Body2(th, format.Percent(asset.PriceChangePercent))
							l.Color = changeColor(a.style, asset.IsPositiveChange())
							return l.Layout(gtx)
						}),
					)
				})
			})
		})
	})
}

func (a *Analytics) layoutTransactions(gtx C, th *material.Theme) D {
	txs := a.ws.Mock.Transactions(time.Now())
	table := component.Table(th, &a.txTable)
	table.HScrollbarStyle.Indicator.MinorWidth = 0
	table.HScrollbarStyle.Track.MinorPadding = 0
	table.VScrollbarStyle.Indicator.MinorWidth = 0
	table.VScrollbarStyle.Track.MinorPadding = 0
	const (
		typeCol = iota
		assetCol
		amountCol
		dateCol
		numCols
	)
	rowHeight := gtx.Sp(28)
	gtx.Constraints.Max.Y = rowHeight * (len(txs) + 1)
	gtx.Constraints.Min.Y = gtx.Constraints.Max.Y
	colWidth := gtx.Constraints.Max.X / numCols
	return table.Layout(gtx, len(txs), numCols,
		func(axis layout.Axis, index, constraint int) int {
			if axis == layout.Vertical {
				return min(constraint, rowHeight)
			}
			return min(constraint, colWidth)
		},
		func(gtx C, index int) D {
			titles := [numCols]string{"Type", "Asset", "Amount", "Date"}
			l := material.Body2(th, titles[index])
			l.Color = secondary
			if index == amountCol {
				l.Alignment = text.End
			}
			return l.Layout(gtx)
		},
		func(gtx C, row, col int) (dims D) {
			defer func() {
				dims.Size = gtx.Constraints.Constrain(dims.Size)
			}()
			tx := txs[row]
			var l material.LabelStyle
			switch col {
			case typeCol:
				l = material.Body1(th, tx.Type.String())
			case assetCol:
				l = material.Body1(th, tx.Symbol)
			case amountCol:
				l = material.Body1(th, format.Amount(tx.Amount, tx.Type.Credit()))
				l.Color = changeColor(a.style, tx.Type.Credit())
				l.Alignment = text.End
			case dateCol:
				l = material.Body1(th, format.LongDate(tx.Date))
			default:
				return D{Size: gtx.Constraints.Min}
			}
			l.MaxLines = 1
			return layout.UniformInset(2).Layout(gtx, l.Layout)
		})
}
